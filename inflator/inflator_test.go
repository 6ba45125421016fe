package inflator_test

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/archiver/compressor"
	"code.cloudfoundry.org/lager"
	"code.cloudfoundry.org/lager/lagertest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/passvet/passvet/inflator"
)

var _ = Describe("Inflator", func() {
	var (
		logger  lager.Logger
		tmpDir  string
		destDir string
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("inflator")

		var err error
		tmpDir, err = ioutil.TempDir("", "inflator-test")
		Expect(err).NotTo(HaveOccurred())

		destDir = filepath.Join(tmpDir, "out")
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tmpDir)).To(Succeed())
	})

	writeTar := func(srcDir, tarPath string) {
		tarFile, err := os.Create(tarPath)
		Expect(err).NotTo(HaveOccurred())
		defer tarFile.Close()

		Expect(compressor.WriteTar(srcDir, tarFile)).To(Succeed())
	}

	findFile := func(root, name string) string {
		var found string
		err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && info.Name() == name {
				found = path
			}
			return nil
		})
		Expect(err).NotTo(HaveOccurred())
		return found
	}

	It("extracts an archive into the destination", func() {
		srcDir := filepath.Join(tmpDir, "src")
		Expect(os.MkdirAll(srcDir, 0755)).To(Succeed())
		Expect(ioutil.WriteFile(filepath.Join(srcDir, "file1"), []byte("hunter2\n"), 0644)).To(Succeed())

		tarPath := filepath.Join(tmpDir, "src.tar")
		writeTar(srcDir, tarPath)

		inflate := inflator.New()
		defer inflate.Close()

		Expect(inflate.Inflate(logger, tarPath, destDir)).To(Succeed())

		extracted := findFile(destDir, "file1")
		Expect(extracted).NotTo(BeEmpty())

		contents, err := ioutil.ReadFile(extracted)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(contents)).To(Equal("hunter2\n"))
	})

	It("extracts archives nested inside the archive", func() {
		innerDir := filepath.Join(tmpDir, "inner")
		Expect(os.MkdirAll(innerDir, 0755)).To(Succeed())
		Expect(ioutil.WriteFile(filepath.Join(innerDir, "file2"), []byte("swordfish\n"), 0644)).To(Succeed())

		outerDir := filepath.Join(tmpDir, "outer")
		Expect(os.MkdirAll(outerDir, 0755)).To(Succeed())
		writeTar(innerDir, filepath.Join(outerDir, "inner.tar"))

		tarPath := filepath.Join(tmpDir, "outer.tar")
		writeTar(outerDir, tarPath)

		inflate := inflator.New()
		defer inflate.Close()

		Expect(inflate.Inflate(logger, tarPath, destDir)).To(Succeed())

		Expect(findFile(destDir, "file2")).NotTo(BeEmpty())
		Expect(findFile(destDir, "inner.tar")).To(BeEmpty())
	})

	Context("when the file is not actually an archive", func() {
		It("records the failure in its log file and carries on", func() {
			bogusPath := filepath.Join(tmpDir, "bogus.tar")
			Expect(ioutil.WriteFile(bogusPath, []byte("not a tarball"), 0644)).To(Succeed())

			inflate := inflator.New()
			defer inflate.Close()

			Expect(inflate.Inflate(logger, bogusPath, destDir)).To(Succeed())

			contents, err := ioutil.ReadFile(inflate.LogPath())
			Expect(err).NotTo(HaveOccurred())
			Expect(string(contents)).To(ContainSubstring("bogus.tar"))
		})
	})
})
