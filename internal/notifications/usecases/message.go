package usecases

import (
	"fmt"
	"strings"
	checklistUsecases "tagback-server/internal/checklist/usecases"
	"tagback-server/internal/infra/notification"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	tagsDomain "tagback-server/internal/tags/domain"
	tagsUsecases "tagback-server/internal/tags/usecases"
	"time"
)

func scanEmail(notice tagsUsecases.ScanNotice, baseURL string) notification.EmailRequest {
	var body strings.Builder

	switch notice.Scan.Kind {
	case tagsDomain.ScanKindLocation:
		fmt.Fprintf(&body, "Someone who found %s shared where they are.\n\n", notice.Item.Name)
	default:
		fmt.Fprintf(&body, "The tag on %s was just scanned.\n\n", notice.Item.Name)
	}

	fmt.Fprintf(&body, "- Tag: %s\n", notice.Scan.Code)
	fmt.Fprintf(&body, "- When: %s\n", notice.Scan.CreatedAt.UTC().Format(time.RFC1123))
	writeLocation(&body, notice.Scan.Location)
	writeFinder(&body, notice.Scan.Finder)
	writeItemLink(&body, baseURL, notice.Item.ID)

	return notification.EmailRequest{
		To:      notice.Item.Contacts.Email,
		Subject: fmt.Sprintf("%s was scanned", notice.Item.Name),
		Body:    body.String(),
	}
}

func submissionEmail(notice checklistUsecases.SubmissionNotice, baseURL string) notification.EmailRequest {
	submission := notice.Submission

	var body strings.Builder
	fmt.Fprintf(&body, "%s filled in the checklist for %s.\n\n", submission.SubmitterName, notice.Item.Name)
	for _, result := range submission.Results {
		fmt.Fprintf(&body, "- %s: %s\n", result.Label, formatValue(result.Value))
	}
	body.WriteString("\n")
	fmt.Fprintf(&body, "- When: %s\n", submission.CreatedAt.UTC().Format(time.RFC1123))
	if submission.SubmitterEmail != "" {
		fmt.Fprintf(&body, "- Contact: %s\n", submission.SubmitterEmail)
	}
	writeLocation(&body, submission.Location)
	writeItemLink(&body, baseURL, notice.Item.ID)

	return notification.EmailRequest{
		To:      notice.Item.Contacts.Email,
		Subject: fmt.Sprintf("New checklist submission for %s", notice.Item.Name),
		Body:    body.String(),
	}
}

func writeLocation(body *strings.Builder, location *shareddomain.GeoPoint) {
	if location == nil {
		return
	}
	fmt.Fprintf(body, "- Location: https://maps.google.com/?q=%f,%f\n", location.Latitude, location.Longitude)
}

func writeFinder(body *strings.Builder, finder shareddomain.FinderContact) {
	if finder.IsEmpty() {
		return
	}
	body.WriteString("\nLeft by the finder:\n")
	if finder.Name != "" {
		fmt.Fprintf(body, "- Name: %s\n", finder.Name)
	}
	if finder.Email != "" {
		fmt.Fprintf(body, "- Email: %s\n", finder.Email)
	}
	if finder.Phone != "" {
		fmt.Fprintf(body, "- Phone: %s\n", finder.Phone)
	}
	if finder.Message != "" {
		fmt.Fprintf(body, "- Message: %s\n", finder.Message)
	}
}

func writeItemLink(body *strings.Builder, baseURL string, itemID shareddomain.ID) {
	if baseURL == "" {
		return
	}
	fmt.Fprintf(body, "\nOpen %s/items/%s to see the full history.\n", strings.TrimRight(baseURL, "/"), itemID)
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "-"
	case bool:
		if v {
			return "yes"
		}
		return "no"
	default:
		return fmt.Sprint(v)
	}
}
