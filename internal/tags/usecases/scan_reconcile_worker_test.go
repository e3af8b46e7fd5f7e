package usecases_test

import (
	"context"
	"tagback-server/cmd/config"
	tagsUsecases "tagback-server/internal/tags/usecases"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ScanReconcileWorker", func() {
	var repository *fakeTagRepository

	BeforeEach(func() {
		repository = newFakeTagRepository()
	})

	It("should reject an invalid schedule", func() {
		_, err := tagsUsecases.NewScanReconcileWorker(time.NewTicker(time.Hour), config.ScansConfig{ReconcileSchedule: "every night"}, repository)
		Expect(err).To(HaveOccurred())
	})

	It("should plan the next run from the schedule", func() {
		worker, err := tagsUsecases.NewScanReconcileWorker(time.NewTicker(time.Hour), config.ScansConfig{ReconcileSchedule: "0 3 * * *"}, repository)
		Expect(err).NotTo(HaveOccurred())

		next := worker.NextRun()
		Expect(next).To(BeTemporally(">", time.Now()))
		Expect(next.Hour()).To(Equal(3))
		Expect(next.Minute()).To(Equal(0))
	})

	It("should reconcile on demand", func() {
		worker, err := tagsUsecases.NewScanReconcileWorker(time.NewTicker(time.Hour), config.ScansConfig{ReconcileSchedule: "* * * * *"}, repository)
		Expect(err).NotTo(HaveOccurred())

		worker.Reconcile(context.Background())

		Expect(repository.reconciled).To(Equal(int64(1)))
	})

	It("should stop when its context is cancelled", func() {
		worker, err := tagsUsecases.NewScanReconcileWorker(time.NewTicker(10*time.Millisecond), config.ScansConfig{ReconcileSchedule: "0 3 * * *"}, repository)
		Expect(err).NotTo(HaveOccurred())

		ctx, cancel := context.WithCancel(context.Background())
		stopped := make(chan struct{})
		go worker.Run(ctx, func() { close(stopped) })

		cancel()
		Eventually(stopped, time.Second).Should(BeClosed())
		worker.Shutdown()
	})
})
