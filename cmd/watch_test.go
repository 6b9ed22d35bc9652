package cmd

import (
	"context"
	"net/http"

	"eoatracker/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("serve", func() {
	It("should stop the server once the context is done", func() {
		ctx, cancel := context.WithCancel(context.Background())
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), "0")

		done := make(chan error, 1)
		go func() { done <- serve(ctx, srv) }()

		cancel()
		Eventually(done).Should(Receive(BeNil()))
	})

	It("should return server failures", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), "not-a-port")

		err := serve(context.Background(), srv)
		Expect(err).To(MatchError(ContainSubstring("listen and serve")))
	})
})
