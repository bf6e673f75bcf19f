package main

import (
	"encoding/binary"
	"encoding/hex"
	goerrors "errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"
	"golang.org/x/text/encoding/unicode"

	"github.com/wippyai/unic/errors"
	"github.com/wippyai/unic/transcoder"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Path to input file")
		text        = flag.String("text", "", "Literal input text")
		hexInput    = flag.String("hex", "", "Hex-encoded input bytes (e.g. \"C2 20\")")
		fromEnc     = flag.String("from", "utf8", "Input encoding: utf8, utf16le, utf16be")
		outFile     = flag.String("out", "", "Write UTF-16 output to file")
		byteOrder   = flag.String("byteorder", "le", "Output byte order: le or be")
		bom         = flag.Bool("bom", false, "Prepend a byte order mark to the output")
		dump        = flag.Bool("dump", false, "Print a per-code-point breakdown")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			transcoder.SetLogger(logger)
			defer logger.Sync()
		}
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *inFile == "" && *text == "" && *hexInput == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -in <file> [-from utf16le] [-dump] [-out out.u16 -byteorder le|be -bom]")
		fmt.Fprintln(os.Stderr, "       inspect -text <string> [-dump]")
		fmt.Fprintln(os.Stderr, "       inspect -hex \"C2 20\" [-dump]")
		fmt.Fprintln(os.Stderr, "       inspect -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*inFile, *text, *hexInput, *fromEnc, *outFile, *byteOrder, *bom, *dump); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inFile, text, hexInput, fromEnc, outFile, byteOrder string, bom, dump bool) error {
	src, err := readInput(inFile, text, hexInput, fromEnc)
	if err != nil {
		return err
	}

	fmt.Printf("Input: %d bytes\n", len(src))

	cpCount, err := transcoder.UTF32Size(src)
	if err != nil {
		reportFault(src, err)
		return fmt.Errorf("input is not well-formed UTF-8")
	}
	unitCount, err := transcoder.UTF16Size(src)
	if err != nil {
		// Shape-valid UTF-8 can still carry a code point above U+10FFFF.
		reportFault(src, err)
		return fmt.Errorf("input is not representable in UTF-16")
	}

	fmt.Printf("Code points: %d\n", cpCount)
	fmt.Printf("UTF-16 units: %d (%d bytes)\n", unitCount, unitCount*2)

	if dump {
		fmt.Println()
		dumpCodePoints(src)
	}

	if outFile != "" {
		data, err := serializeUTF16(src, byteOrder, bom, unitCount)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outFile, data, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Printf("Wrote %d bytes to %s\n", len(data), outFile)
	}

	return nil
}

// readInput loads the input bytes and, for UTF-16 input files, transcodes
// them to UTF-8 first so the inspector always works over a byte sequence.
func readInput(inFile, text, hexInput, fromEnc string) ([]byte, error) {
	var src []byte
	switch {
	case inFile != "":
		data, err := os.ReadFile(inFile)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		src = data
	case hexInput != "":
		cleaned := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\n' || r == '\t' {
				return -1
			}
			return r
		}, hexInput)
		data, err := hex.DecodeString(cleaned)
		if err != nil {
			return nil, fmt.Errorf("decode hex: %w", err)
		}
		src = data
	default:
		src = []byte(text)
	}

	switch fromEnc {
	case "utf8", "":
		return src, nil
	case "utf16le":
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		return dec.Bytes(src)
	case "utf16be":
		dec := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		return dec.Bytes(src)
	default:
		return nil, fmt.Errorf("unknown input encoding %q", fromEnc)
	}
}

func serializeUTF16(src []byte, byteOrder string, bom bool, unitCount int) ([]byte, error) {
	units, err := transcoder.AppendUTF16(make([]uint16, 0, unitCount), src)
	if err != nil {
		return nil, err
	}

	var order binary.AppendByteOrder
	switch byteOrder {
	case "le":
		order = binary.LittleEndian
	case "be":
		order = binary.BigEndian
	default:
		return nil, fmt.Errorf("unknown byte order %q", byteOrder)
	}

	data := make([]byte, 0, (unitCount+1)*2)
	if bom {
		data = order.AppendUint16(data, 0xFEFF)
	}
	for _, u := range units {
		data = order.AppendUint16(data, u)
	}
	return data, nil
}

// reportFault prints the structured fault and a hex window around the
// offending byte.
func reportFault(src []byte, err error) {
	fmt.Fprintf(os.Stderr, "fault: %v\n", err)

	var terr *errors.Error
	if !goerrors.As(err, &terr) || terr.Position == errors.NoPosition || terr.Position >= len(src) {
		return
	}

	width := 16
	if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 0 {
		// Each byte takes three columns in the dump plus a gutter.
		if bytes := (w - 10) / 3; bytes >= 4 && bytes < width {
			width = bytes
		}
	}

	start := terr.Position - width/2
	if start < 0 {
		start = 0
	}
	end := start + width
	if end > len(src) {
		end = len(src)
	}

	var hexRow, markRow strings.Builder
	fmt.Fprintf(&hexRow, "%6d  ", start)
	markRow.WriteString("        ")
	for i := start; i < end; i++ {
		fmt.Fprintf(&hexRow, "%02X ", src[i])
		if i == terr.Position {
			markRow.WriteString("^^ ")
		} else {
			markRow.WriteString("   ")
		}
	}
	fmt.Fprintln(os.Stderr, hexRow.String())
	fmt.Fprintln(os.Stderr, markRow.String())
}

func dumpCodePoints(src []byte) {
	fmt.Println("offset  bytes        code point  utf-16")

	for pos := 0; pos < len(src); {
		cp, next, err := transcoder.DecodeNext(src, pos)
		if err != nil {
			reportFault(src, err)
			return
		}

		var sink transcoder.SliceSink
		utf16Col := "not representable"
		if _, err := transcoder.EncodeCodePoints([]rune{cp}, &sink); err == nil {
			parts := make([]string, len(sink.Units))
			for i, u := range sink.Units {
				parts[i] = fmt.Sprintf("%04X", u)
			}
			utf16Col = strings.Join(parts, " ")
		}

		fmt.Printf("%6d  %-12s U+%06X    %s\n", pos, hexSpan(src[pos:next]), cp, utf16Col)
		pos = next
	}
}

func hexSpan(span []byte) string {
	parts := make([]string, len(span))
	for i, b := range span {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}
