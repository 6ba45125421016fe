package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/kardianos/osext"
	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
	"gopkg.in/yaml.v3"

	"github.com/passvet/passvet/inflator"
	passlog "github.com/passvet/passvet/log"
	"github.com/passvet/passvet/mimetype"
	"github.com/passvet/passvet/report"
	"github.com/passvet/passvet/scanners"
	"github.com/passvet/passvet/scanners/dirscanner"
	"github.com/passvet/passvet/scanners/listscanner"
	"github.com/passvet/passvet/strength"
	"github.com/passvet/passvet/strength/matchers"
)

type RateCommand struct {
	File          string `short:"f" long:"file" description:"file, directory, or archive of password lists to rate" value-name:"FILE"`
	List          bool   `long:"list" description:"read candidates from stdin, one per line"`
	WordsFile     string `long:"words-file" description:"override the builtin common-words list" value-name:"PATH"`
	MinRating     string `long:"min-rating" description:"lowest acceptable rating" value-name:"RATING" default:"Moderate"`
	ShowPasswords bool   `long:"show-passwords" description:"allow password values to be shown in output"`
	ShowMatches   bool   `long:"show-matches" description:"show the fragments that failed the pattern checks"`
	Output        string `long:"output" description:"output format" choice:"text" choice:"json" choice:"yaml" default:"text"`
	NoColor       bool   `long:"no-color" description:"disable colored output"`
	Debug         bool   `long:"debug" description:"enables debug logging"`
	Args          struct {
		Password string `positional-arg-name:"PASSWORD"`
	} `positional-args:"yes"`
}

func (command *RateCommand) Execute(args []string) error {
	warnIfOldExecutable()

	if command.NoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		ansi.DisableColors(true)
	}

	logger := lager.NewLogger("rate")

	if command.Debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
	} else {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.INFO))
	}

	minRating, err := strength.ParseRating(command.MinRating)
	if err != nil {
		return err
	}

	scorer, err := command.buildScorer()
	if err != nil {
		return err
	}

	clean := newCleanup()

	var below int

	switch {
	case command.Args.Password != "":
		below, err = command.rateOne(logger, scorer, minRating, command.Args.Password)
	case command.File != "":
		below, err = command.rateFile(logger, scorer, minRating)
	case command.List:
		below, err = command.rateList(logger, scorer, minRating, listscanner.New(os.Stdin, "STDIN"))
	default:
		var candidate string
		candidate, err = promptForPassword()
		if err == nil {
			below, err = command.rateOne(logger, scorer, minRating, candidate)
		}
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, red("[ERROR]"), err)
	}

	if below > 0 {
		clean.exit(3)
	}

	if err != nil {
		clean.exit(1)
	}

	return nil
}

func (c *RateCommand) rateOne(
	logger lager.Logger,
	scorer strength.Scorer,
	minRating strength.Rating,
	candidate string,
) (int, error) {
	assessment := scorer.Score(logger, candidate)

	switch c.Output {
	case "json":
		if err := writeJSON(os.Stdout, assessment); err != nil {
			return 0, err
		}
	case "yaml":
		if err := writeYAML(os.Stdout, assessment); err != nil {
			return 0, err
		}
	default:
		report.Render(os.Stdout, candidate, assessment, report.Options{
			ShowPassword: c.ShowPasswords,
			ShowMatches:  c.ShowMatches,
		})
	}

	if !assessment.Rating.Meets(minRating) {
		return 1, nil
	}

	return 0, nil
}

func (c *RateCommand) rateList(
	logger lager.Logger,
	scorer strength.Scorer,
	minRating strength.Rating,
	scanner strength.Scanner,
) (int, error) {
	batch := newBatchReport(c.Output, minRating, c.ShowPasswords)

	if err := scorer.ScoreEach(logger, scanner, batch.HandleAssessment); err != nil {
		return batch.below, err
	}

	return batch.below, batch.finish()
}

func (c *RateCommand) rateFile(
	logger lager.Logger,
	scorer strength.Scorer,
	minRating strength.Rating,
) (int, error) {
	logger = logger.Session("rate-file", lager.Data{"file": c.File})
	logger.Debug("starting")
	defer logger.Debug("done")

	fi, err := os.Stat(c.File)
	if err != nil {
		return 0, err
	}

	inflateDir, err := ioutil.TempDir("", "passvet")
	if err != nil {
		return 0, err
	}
	defer os.RemoveAll(inflateDir)

	var quietLogger lager.Logger = passlog.NewNullLogger()
	if c.Debug {
		quietLogger = logger
	}

	batch := newBatchReport(c.Output, minRating, c.ShowPasswords)

	if fi.IsDir() {
		inflate := inflator.New()
		defer inflate.Close()

		scanner := dirscanner.New(scorer, batch.HandleAssessment, inflate, inflateDir)
		if err := scanner.Scan(quietLogger, c.File); err != nil {
			return batch.below, err
		}

		return batch.below, batch.finish()
	}

	if _, isArchive := mimetype.IsArchive(c.File); isArchive {
		inflate := inflator.New()
		defer inflate.Close()

		if err := inflateArchive(quietLogger, inflate, inflateDir, c.File); err != nil {
			return batch.below, err
		}

		scanner := dirscanner.New(scorer, batch.HandleAssessment, inflate, inflateDir)
		if err := scanner.Scan(quietLogger, inflateDir); err != nil {
			return batch.below, err
		}

		return batch.below, batch.finish()
	}

	file, err := os.Open(c.File)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	br := bufio.NewReader(file)
	if !mimetype.IsText(br) {
		return 0, fmt.Errorf("refusing to rate %s: not a text file", c.File)
	}

	if err := scorer.ScoreEach(logger, listscanner.New(br, c.File), batch.HandleAssessment); err != nil {
		return batch.below, err
	}

	return batch.below, batch.finish()
}

func (c *RateCommand) buildScorer() (strength.Scorer, error) {
	if c.WordsFile == "" {
		return strength.NewDefaultScorer(), nil
	}

	file, err := os.Open(c.WordsFile)
	if err != nil {
		return nil, err
	}

	matcher := matchers.DowncasedMultiMatcherFromReader(file)

	if err := file.Close(); err != nil {
		return nil, err
	}

	return strength.NewScorer(matcher, strength.DefaultSequenceMatcher()), nil
}

func promptForPassword() (string, error) {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Print("Enter a password to evaluate: ")
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

type ratedCandidate struct {
	Source     string              `json:"source" yaml:"source"`
	Line       int                 `json:"line" yaml:"line"`
	Value      string              `json:"value,omitempty" yaml:"value,omitempty"`
	Assessment strength.Assessment `json:"assessment" yaml:"assessment"`
}

type batchReport struct {
	output     string
	minRating  strength.Rating
	showValues bool
	results    []ratedCandidate
	below      int
	total      int
}

func newBatchReport(output string, minRating strength.Rating, showValues bool) *batchReport {
	return &batchReport{
		output:     output,
		minRating:  minRating,
		showValues: showValues,
		results:    []ratedCandidate{},
	}
}

func (b *batchReport) HandleAssessment(
	logger lager.Logger,
	candidate scanners.Candidate,
	assessment strength.Assessment,
) error {
	b.total++

	if b.output != "text" {
		result := ratedCandidate{
			Source:     candidate.Source,
			Line:       candidate.LineNumber,
			Assessment: assessment,
		}
		if b.showValues {
			result.Value = candidate.Value
		}

		b.results = append(b.results, result)
	}

	if assessment.Rating.Meets(b.minRating) {
		return nil
	}

	b.below++

	if b.output == "text" {
		label := fmt.Sprintf("[%s]", strings.ToUpper(string(assessment.Rating)))
		output := fmt.Sprintf("%s %s (score %d/100)", red(label), candidate.Ref(), assessment.Score)
		if b.showValues {
			output = output + fmt.Sprintf(" [%s]", candidate.Value)
		}
		fmt.Println(output)
	}

	logger.Debug("rated", lager.Data{"ref": candidate.Ref(), "below": b.below})

	return nil
}

func (b *batchReport) finish() error {
	switch b.output {
	case "json":
		return writeJSON(os.Stdout, b.results)
	case "yaml":
		return writeYAML(os.Stdout, b.results)
	}

	fmt.Println()
	fmt.Println("Rating complete!")
	fmt.Println()
	fmt.Println("Candidates rated:", b.total)
	fmt.Println("Below minimum rating:", b.below)

	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	return encoder.Encode(v)
}

func inflateArchive(
	logger lager.Logger,
	inflate inflator.Inflator,
	inflateDir string,
	file string,
) error {
	inflateStart := time.Now()
	fmt.Fprint(os.Stderr, "Inflating archive... ")

	if err := inflate.Inflate(logger, file, inflateDir); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", red("FAILED"))
		return err
	}

	fmt.Fprintf(os.Stderr, "%s\n", green("DONE"))

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Time taken (inflating):", time.Since(inflateStart))
	fmt.Fprintln(os.Stderr, "Any archive inflation errors can be found in:", inflate.LogPath())
	fmt.Fprintln(os.Stderr)

	return nil
}

type cleanup struct {
	work []func()
}

func newCleanup() *cleanup {
	clean := &cleanup{}

	signalsCh := make(chan os.Signal, 1)
	signal.Notify(signalsCh, os.Interrupt)

	go func() {
		<-signalsCh
		log.SetFlags(0)
		log.Println("\ncleaning up...")
		clean.exit(1)
	}()

	return clean
}

func (c *cleanup) register(fn func()) {
	c.work = append(c.work, fn)
}

func (c cleanup) exit(status int) {
	for _, w := range c.work {
		w()
	}

	os.Exit(status)
}

func warnIfOldExecutable() {
	const twoWeeks = 14 * 24 * time.Hour

	exePath, err := osext.Executable()
	if err != nil {
		return
	}

	info, err := os.Stat(exePath)
	if err != nil {
		return
	}

	if time.Since(info.ModTime()) > twoWeeks {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "Executable is old! Please consider running `passvet update`.")
	}
}
