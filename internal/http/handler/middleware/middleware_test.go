package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"eoatracker/internal/http/handler/middleware"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Middleware", func() {
	var (
		w        *httptest.ResponseRecorder
		seenID   string
		terminal http.Handler
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		seenID = ""
		terminal = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenID = middleware.RequestID(r.Context())
			w.WriteHeader(http.StatusTeapot)
		})
	})

	Describe("RequestID", func() {
		It("should generate an id when the caller sends none", func() {
			middleware.NewRequestIDMiddleware().RequestID(terminal).
				ServeHTTP(w, httptest.NewRequest("GET", "/eoa/report", nil))

			_, err := uuid.Parse(seenID)
			Expect(err).NotTo(HaveOccurred())
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seenID))
		})

		It("should reuse the caller's id", func() {
			req := httptest.NewRequest("GET", "/eoa/report", nil)
			req.Header.Set(middleware.RequestIDHeader, "abc-123")

			middleware.NewRequestIDMiddleware().RequestID(terminal).ServeHTTP(w, req)

			Expect(seenID).To(Equal("abc-123"))
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal("abc-123"))
		})

		It("should be empty outside the middleware", func() {
			Expect(middleware.RequestID(httptest.NewRequest("GET", "/", nil).Context())).To(BeEmpty())
		})
	})

	Describe("Logging", func() {
		It("should pass the request through and keep the status", func() {
			handler := middleware.NewRequestIDMiddleware().RequestID(
				middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(terminal))

			handler.ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))

			Expect(w.Code).To(Equal(http.StatusTeapot))
			Expect(seenID).NotTo(BeEmpty())
		})
	})
})
