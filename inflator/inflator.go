package inflator

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/archiver/extractor"
	"code.cloudfoundry.org/lager"

	"github.com/passvet/passvet/mimetype"
)

//go:generate counterfeiter . Inflator

type Inflator interface {
	Inflate(lager.Logger, string, string) error
	LogPath() string
}

type inflator struct {
	extract extractor.Extractor
	logfile *os.File
}

func New() *inflator {
	f, err := ioutil.TempFile("", "passvet-inflator-errors")
	if err != nil {
		panic("failed creating temp file: " + err.Error())
	}

	return &inflator{
		extract: extractor.NewDetectable(),
		logfile: f,
	}
}

func (i *inflator) LogPath() string {
	return i.logfile.Name()
}

func (i *inflator) Close() error {
	return i.logfile.Close()
}

// Inflate extracts the archive into destination and then keeps extracting
// any archives found inside it. Extraction failures are recorded in the
// inflator's log file rather than aborting the walk.
func (i *inflator) Inflate(logger lager.Logger, archivePath, destination string) error {
	logger = logger.Session("inflate", lager.Data{"archive": archivePath})
	logger.Debug("starting")
	defer logger.Debug("done")

	i.extractFile(logger, archivePath, destination)

	return i.extractArchivesInDir(logger, destination)
}

func (i *inflator) extractFile(logger lager.Logger, path, destination string) {
	err := os.MkdirAll(destination, 0755)
	if err != nil {
		panic(err.Error())
	}

	if err := i.extract.Extract(path, destination); err != nil {
		logger.Error("extract-failed", err)
		fmt.Fprintf(i.logfile, "%s: %s\n", path, err)
	}
}

func (i *inflator) extractArchivesInDir(logger lager.Logger, dir string) error {
	children, err := ioutil.ReadDir(dir)
	if err != nil {
		return err
	}

	for c := range children {
		basename := children[c].Name()
		absPath := filepath.Join(dir, basename)

		if children[c].IsDir() {
			err := i.extractArchivesInDir(logger, absPath)
			if err != nil {
				return err
			}
			continue
		}

		if !children[c].Mode().IsRegular() {
			continue
		}

		if _, isArchive := mimetype.IsArchive(basename); isArchive {
			extractDir := filepath.Join(dir, basename+"-contents")
			i.extractFile(logger, absPath, extractDir)

			err = os.RemoveAll(absPath)
			if err != nil {
				return err
			}

			err = i.extractArchivesInDir(logger, extractDir)
			if err != nil {
				return err
			}
		}
	}

	return nil
}
