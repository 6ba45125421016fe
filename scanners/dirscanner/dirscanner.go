package dirscanner

import (
	"bufio"
	"io/ioutil"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/passvet/passvet/inflator"
	"github.com/passvet/passvet/mimetype"
	"github.com/passvet/passvet/scanners/listscanner"
	"github.com/passvet/passvet/strength"
)

type dirScanner struct {
	scorer     strength.Scorer
	handler    strength.AssessmentHandlerFunc
	inflate    inflator.Inflator
	inflateDir string
}

func New(
	scorer strength.Scorer,
	handler strength.AssessmentHandlerFunc,
	inflate inflator.Inflator,
	inflateDir string,
) *dirScanner {
	return &dirScanner{
		scorer:     scorer,
		handler:    handler,
		inflate:    inflate,
		inflateDir: inflateDir,
	}
}

// Scan walks path recursively and scores every line of every file that
// looks like text. Archives found along the way are inflated into the
// inflate directory and their contents scanned as well.
func (s *dirScanner) Scan(logger lager.Logger, path string) error {
	logger = logger.Session("dir-scanner", lager.Data{"path": path})
	logger.Debug("starting")
	defer logger.Debug("done")

	return s.scan(logger, path)
}

func (s *dirScanner) scan(logger lager.Logger, path string) error {
	children, err := ioutil.ReadDir(path)
	if err != nil {
		return err
	}

	var result error

	for i := range children {
		name := children[i].Name()
		wholePath := filepath.Join(path, name)

		if children[i].IsDir() {
			if err := s.scan(logger, wholePath); err != nil {
				result = multierror.Append(result, err)
			}
			continue
		}

		if !children[i].Mode().IsRegular() {
			continue
		}

		if _, isArchive := mimetype.IsArchive(name); isArchive {
			dest, err := ioutil.TempDir(s.inflateDir, name)
			if err != nil {
				return err
			}

			if err := s.inflate.Inflate(logger, wholePath, dest); err != nil {
				result = multierror.Append(result, err)
				continue
			}

			if err := s.scan(logger, dest); err != nil {
				result = multierror.Append(result, err)
			}
			continue
		}

		if err := s.scanFile(logger, wholePath); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result
}

func (s *dirScanner) scanFile(logger lager.Logger, path string) error {
	fh, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fh.Close()

	br := bufio.NewReader(fh)
	if !mimetype.IsText(br) {
		return nil
	}

	return s.scorer.ScoreEach(logger, listscanner.New(br, path), s.handler)
}
