package registry_test

import (
	"os"
	"path/filepath"

	"eoatracker/internal/registry"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Registry", func() {
	Describe("Parse", func() {
		var (
			data   string
			chains []registry.Chain
			err    error
		)

		JustBeforeEach(func() {
			chains, err = registry.Parse([]byte(data))
		})

		When("the file lists valid chains", func() {
			BeforeEach(func() {
				data = `
chains:
  - id: 1
    name: Ethereum
    rpc: wss://eth.example.org
    blocktime: 12
  - id: 137
    name: Polygon
    rpc: https://polygon.example.org
    blocktime: 2.1
`
			})

			It("should return every chain", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(chains).To(Equal([]registry.Chain{
					{ID: 1, Name: "Ethereum", RPC: "wss://eth.example.org", Blocktime: 12},
					{ID: 137, Name: "Polygon", RPC: "https://polygon.example.org", Blocktime: 2.1},
				}))
			})
		})

		When("two chains share an id", func() {
			BeforeEach(func() {
				data = `
chains:
  - {id: 1, name: A, rpc: "https://a.example.org", blocktime: 12}
  - {id: 1, name: B, rpc: "https://b.example.org", blocktime: 2}
`
			})

			It("should return ErrDuplicateChain", func() {
				Expect(err).To(MatchError(registry.ErrDuplicateChain))
			})
		})

		When("the blocktime is not positive", func() {
			BeforeEach(func() {
				data = `
chains:
  - {id: 1, name: A, rpc: "https://a.example.org", blocktime: -1}
`
			})

			It("should fail validation", func() {
				Expect(err).To(MatchError(ContainSubstring("validate chain #0")))
			})
		})

		When("the rpc is not an endpoint url", func() {
			BeforeEach(func() {
				data = `
chains:
  - {id: 1, name: A, rpc: "localhost:8545", blocktime: 12}
`
			})

			It("should fail validation", func() {
				Expect(err).To(HaveOccurred())
			})
		})

		When("the list is empty", func() {
			BeforeEach(func() {
				data = "chains: []"
			})

			It("should return ErrNoChains", func() {
				Expect(err).To(MatchError(registry.ErrNoChains))
			})
		})
	})

	Describe("Load", func() {
		It("should fall back to the default registry without a path", func() {
			chains, err := registry.Load("")
			Expect(err).NotTo(HaveOccurred())
			Expect(chains).To(Equal(registry.Default()))
			Expect(chains[0].Blocktime).To(Equal(12.0))
		})

		It("should read chains from disk", func() {
			path := filepath.Join(GinkgoT().TempDir(), "chains.yaml")
			Expect(os.WriteFile(path, []byte("chains:\n  - {id: 10, name: Optimism, rpc: \"https://op.example.org\", blocktime: 2}\n"), 0o600)).To(Succeed())

			chains, err := registry.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(chains).To(HaveLen(1))
			Expect(chains[0].Name).To(Equal("Optimism"))
		})

		It("should wrap read errors", func() {
			_, err := registry.Load(filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
			Expect(err).To(MatchError(ContainSubstring("read chains file")))
		})
	})
})
