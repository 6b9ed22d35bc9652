package server_test

import (
	"net/http"

	"eoatracker/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HTTPServer", func() {
	It("should stop without error on shutdown", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), "0")

		errChan := srv.Run()
		Expect(srv.Shutdown()).To(Succeed())

		Eventually(errChan).Should(BeClosed())
	})

	It("should report listen failures", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), "not-a-port")

		var err error
		Eventually(srv.Run()).Should(Receive(&err))
		Expect(err).To(MatchError(ContainSubstring("listen and serve")))
	})
})
