package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/scan2pdf/internal/cli"
	_ "github.com/tupyy/scan2pdf/pkg/device/fake"
)

// execute runs a fresh root command with the given arguments and returns
// its stdout and error.
func execute(args ...string) (string, error) {
	cmd := cli.NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var _ = Describe("RootCommand", func() {
	Context("listing devices", func() {
		It("prints one device name per line", func() {
			// When listing with the demo backend
			out, err := execute("-L")

			// Then the single demo device is printed
			Expect(err).To(BeNil())
			Expect(out).To(Equal("fake:flatbed\n"))
		})

		It("rejects positional arguments", func() {
			_, err := execute("-L", "fake:flatbed")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("takes no arguments"))
		})
	})

	Context("argument validation", func() {
		It("rejects combining -L with --create-configuration", func() {
			_, err := execute("-L", "--create-configuration")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("mutually exclusive"))
		})

		It("requires a device argument for scanning", func() {
			_, err := execute()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("DEVICE argument required"))
		})

		It("requires a target argument for scanning", func() {
			_, err := execute("fake:flatbed")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("TARGET argument required"))
		})

		It("requires a device argument for configuration creation", func() {
			_, err := execute("--create-configuration")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("requires a DEVICE argument"))
		})
	})

	Context("creating a configuration and scanning with it", func() {
		var workdir string

		BeforeEach(func() {
			var err error
			workdir, err = os.MkdirTemp("", "scan2pdf-cli")
			Expect(err).To(BeNil())
		})

		AfterEach(func() {
			os.RemoveAll(workdir)
		})

		It("produces a configuration file and then a PDF", func() {
			configPath := filepath.Join(workdir, "scanner.conf")
			target := filepath.Join(workdir, "out.pdf")

			// When creating the configuration
			_, err := execute("--create-configuration", "fake:flatbed", configPath)
			Expect(err).To(BeNil())

			// Then the file describes the demo device
			raw, err := os.ReadFile(configPath)
			Expect(err).To(BeNil())
			Expect(strings.HasPrefix(string(raw), "# configuration options for fake:flatbed\n")).To(BeTrue())
			Expect(string(raw)).To(ContainSubstring("resolution = 100"))

			// When scanning with it applied
			_, err = execute("-C", configPath, "fake:flatbed", target)
			Expect(err).To(BeNil())

			// Then the target is a PDF
			doc, err := os.ReadFile(target)
			Expect(err).To(BeNil())
			Expect(bytes.HasPrefix(doc, []byte("%PDF"))).To(BeTrue())
		})

		It("reports an unknown device", func() {
			_, err := execute("no:such", filepath.Join(workdir, "out.pdf"))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("no:such"))
		})
	})
})
