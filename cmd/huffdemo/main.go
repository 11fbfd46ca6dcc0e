package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	logging "github.com/op/go-logging"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/chronos-tachyon/huffman/v2"
	"github.com/chronos-tachyon/huffman/v2/histogram"
)

const progName = "huffdemo"

const defaultText = "aabaccba"

var log = logging.MustGetLogger("huffdemo")

func usageMessage() string {
	return `Usage: ` + progName + ` [OPTIONS]

Builds a Huffman code from the symbol frequencies of a text, encodes the text
with it, decodes the result and checks that the round trip is lossless.

Options:
  -t, -text TEXT    text to compress (default "` + defaultText + `")
  -f, -file PATH    read the text from PATH instead
  -canonical        use canonical codes
  -dump             also dump the code tree
  -o, -out PATH     write the encoded bit stream to PATH
  -d, -debug        enable debug logging
`
}

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-20s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func usageErrorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, fmt.Sprintf(format, args...))
	io.WriteString(os.Stderr, usageMessage())
	os.Exit(2)
}

func exitError(err error) {
	log.Errorf("%v", err)
	os.Exit(1)
}

type options struct {
	text      string
	file      string
	out       string
	canonical bool
	dump      bool
}

func main() {
	startLogging()

	ourFlags := flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	var opts options
	var debugLogging bool
	ourFlags.StringVar(&opts.text, "text", defaultText, "")
	ourFlags.StringVar(&opts.text, "t", defaultText, "")
	ourFlags.StringVar(&opts.file, "file", "", "")
	ourFlags.StringVar(&opts.file, "f", "", "")
	ourFlags.StringVar(&opts.out, "out", "", "")
	ourFlags.StringVar(&opts.out, "o", "", "")
	ourFlags.BoolVar(&opts.canonical, "canonical", false, "")
	ourFlags.BoolVar(&opts.dump, "dump", false, "")
	ourFlags.BoolVar(&debugLogging, "debug", false, "")
	ourFlags.BoolVar(&debugLogging, "d", false, "")

	argErr := ourFlags.Parse(os.Args[1:])
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}
	if ourFlags.NArg() != 0 {
		usageErrorf("unexpected argument %q", ourFlags.Arg(0))
	}

	if debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	if err := run(os.Stdout, opts); err != nil {
		exitError(err)
	}
}

func run(w io.Writer, opts options) error {
	text := opts.text
	symbols := huffman.SymbolsFromString(text)
	if opts.file != "" {
		raw, err := os.ReadFile(opts.file)
		if err != nil {
			return errors.Wrap(err, "read input")
		}
		text = string(raw)
		symbols = huffman.SymbolsFromBytes(raw)
	}

	freqs := histogram.FromSymbols(symbols)
	if len(freqs) == 0 {
		log.Warning("empty input, nothing to do")
		return nil
	}
	log.Infof("%d symbols, %d distinct, entropy %.4f bits/symbol", histogram.Total(freqs), len(freqs), histogram.Entropy(freqs))

	newCodec := huffman.NewCodec
	if opts.canonical {
		newCodec = huffman.NewCanonicalCodec
	}
	codec, err := newCodec(freqs)
	if err != nil {
		return errors.Wrap(err, "build code")
	}

	log.Debugf("%v", codec.Table())
	if _, err := codec.Table().Dump(w); err != nil {
		return err
	}
	if opts.dump {
		if _, err := codec.Tree().Dump(w); err != nil {
			return err
		}
	}

	stream, err := codec.Encode(symbols)
	if err != nil {
		return errors.Wrap(err, "encode")
	}
	if opts.file == "" {
		fmt.Fprintf(w, "%q:\n", text)
		fmt.Fprintf(w, "\tencode: %s\n", stream)
	} else {
		fmt.Fprintf(w, "%s: %d bytes\n", opts.file, len(text))
	}

	decoded, err := codec.Decode(stream)
	if err != nil {
		return errors.Wrap(err, "decode")
	}
	if opts.file == "" {
		fmt.Fprintf(w, "\tdecode: %s\n", huffman.StringFromSymbols(decoded))
	}
	if !slices.Equal(decoded, symbols) {
		return errors.Errorf("round trip mismatch: decoded %d symbols, expected %d", len(decoded), len(symbols))
	}

	total := histogram.Total(freqs)
	fmt.Fprintf(w, "\t%d bits (%.3f bits/symbol), fixed width %d bits (%d bits/symbol)\n",
		stream.Len, float64(stream.Len)/float64(total), histogram.FixedWidthCost(freqs), codec.Table().FixedWidthSize())

	if opts.out != "" {
		if err := writeStream(opts.out, stream); err != nil {
			return err
		}
		log.Infof("wrote %d bits to %s", stream.Len, opts.out)
	}
	return nil
}

func writeStream(path string, stream huffman.EncodedStream) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if _, err := stream.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
