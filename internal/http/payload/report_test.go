package payload_test

import (
	"eoatracker/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ReportRequest", func() {
	It("should accept no chain ids", func() {
		req := payload.ReportRequest{}
		Expect(req.Validate()).To(Succeed())

		ids, err := req.IDs()
		Expect(err).NotTo(HaveOccurred())
		Expect(ids).To(BeEmpty())
	})

	It("should collect the chain ids", func() {
		req := payload.ReportRequest{ChainIDs: []string{"1", "10", "1"}}
		Expect(req.Validate()).To(Succeed())

		ids, err := req.IDs()
		Expect(err).NotTo(HaveOccurred())
		Expect(ids).To(HaveLen(2))
		Expect(ids).To(HaveKey(int64(1)))
		Expect(ids).To(HaveKey(int64(10)))
	})

	DescribeTable("rejects malformed ids",
		func(id string) {
			req := payload.ReportRequest{ChainIDs: []string{"1", id}}
			Expect(req.Validate()).NotTo(Succeed())
		},
		Entry("negative", "-1"),
		Entry("zero", "0"),
		Entry("not a number", "mainnet"),
		Entry("empty", ""),
	)
})

var _ = Describe("ContractsRequest", func() {
	It("should parse a valid id", func() {
		req := payload.ContractsRequest{ChainID: "137"}
		Expect(req.Validate()).To(Succeed())

		id, err := req.ID()
		Expect(err).NotTo(HaveOccurred())
		Expect(id).To(Equal(int64(137)))
	})

	DescribeTable("rejects malformed ids",
		func(id string) {
			Expect(payload.ContractsRequest{ChainID: id}.Validate()).NotTo(Succeed())
		},
		Entry("missing", ""),
		Entry("hex", "0x1"),
		Entry("too long", "12345678901234567890"),
	)
})
