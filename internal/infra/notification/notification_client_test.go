package notification_test

import (
	"context"
	"errors"

	"tagback-server/internal/infra/notification"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("NotificationClient", func() {
	ginkgo.Context("NewClient", func() {
		ginkgo.It("should fall back to the log client without an api key", func() {
			client := notification.NewClient(notification.MailerSendConfig{})

			gomega.Expect(client).To(gomega.BeAssignableToTypeOf(&notification.LogClient{}))
		})

		ginkgo.It("should use mailersend with an api key", func() {
			client := notification.NewClient(notification.MailerSendConfig{
				APIKey:    "mlsn.test",
				FromEmail: "noreply@tagback.test",
				FromName:  "Tagback",
			})

			gomega.Expect(client).To(gomega.BeAssignableToTypeOf(&notification.MailerSendClient{}))
		})
	})

	ginkgo.Context("LogClient", func() {
		ginkgo.It("should accept every email", func() {
			err := notification.NewLogClient().SendEmail(context.Background(), notification.EmailRequest{
				To:      "owner@example.com",
				Subject: "Your item was scanned",
				Body:    "Someone scanned Rex",
			})

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})
	})

	ginkgo.Context("MailerSendClient", func() {
		ginkgo.It("should reject an email without recipient before calling the api", func() {
			client := notification.NewMailerSendClient(notification.MailerSendConfig{APIKey: "mlsn.test"})

			err := client.SendEmail(context.Background(), notification.EmailRequest{Subject: "hello"})

			var notificationErr *notification.NotificationError
			gomega.Expect(errors.As(err, &notificationErr)).To(gomega.BeTrue())
			gomega.Expect(notificationErr.Message).To(gomega.Equal("email recipient is required"))
		})
	})

	ginkgo.Context("NotificationError", func() {
		ginkgo.It("should unwrap the cause", func() {
			cause := errors.New("boom")
			err := &notification.NotificationError{Message: "sending", Err: cause}

			gomega.Expect(err.Error()).To(gomega.Equal("sending: boom"))
			gomega.Expect(errors.Is(err, cause)).To(gomega.BeTrue())
		})
	})
})
