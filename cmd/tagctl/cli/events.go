package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"slices"
	"syscall"

	"tagback-server/cmd/api/wire"
	"tagback-server/internal/infra/pubsub"
	"tagback-server/internal/shared_kernel/avro"

	"github.com/spf13/cobra"
)

// eventPrototypes maps each domain event topic to the record decoded from it.
var eventPrototypes = map[string]func() pubsub.Prototype{
	avro.TagTypesSubject:             func() pubsub.Prototype { return &avro.AvroTagType{} },
	avro.ItemsSubject:                func() pubsub.Prototype { return &avro.AvroItem{} },
	avro.TagsSubject:                 func() pubsub.Prototype { return &avro.AvroTag{} },
	avro.TagScansSubject:             func() pubsub.Prototype { return &avro.AvroTagScan{} },
	avro.ChecklistSubmissionsSubject: func() pubsub.Prototype { return &avro.AvroChecklistSubmission{} },
}

func eventTopics() []string {
	topics := make([]string, 0, len(eventPrototypes))
	for topic := range eventPrototypes {
		topics = append(topics, topic)
	}
	slices.Sort(topics)
	return topics
}

func NewEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect domain events",
	}

	cmd.AddCommand(newEventsTailCommand())

	return cmd
}

func newEventsTailCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "tail TOPIC",
		Short:     "Print the events published on a topic as JSON lines",
		Long:      fmt.Sprintf("Consumes a domain event topic until interrupted. Known topics: %v.", eventTopics()),
		Args:      cobra.ExactArgs(1),
		ValidArgs: eventTopics(),
		RunE: func(cmd *cobra.Command, args []string) error {
			newPrototype, ok := eventPrototypes[args[0]]
			if !ok {
				return fmt.Errorf("unknown topic %q, expected one of %v", args[0], eventTopics())
			}

			factory, err := wire.InitializeConsumerFactory()
			if err != nil {
				return fmt.Errorf("initializing consumer: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			return factory.New().Consume(ctx, pubsub.Topic(args[0]), printEvent(out), newPrototype())
		},
	}
}

func printEvent(out io.Writer) pubsub.MessageHandler {
	return func(_ context.Context, key pubsub.Key, message pubsub.Prototype) error {
		payload, err := json.Marshal(message)
		if err != nil {
			return fmt.Errorf("encoding event %s: %w", key, err)
		}
		_, err = fmt.Fprintf(out, "%s\t%s\n", key, payload)
		return err
	}
}
