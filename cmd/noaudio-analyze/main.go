package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/wav"
	"github.com/fatih/color"
	"github.com/go-audio/audio"

	"github.com/lagooneration/noaudio/analysis"
	"github.com/lagooneration/noaudio/logging"
	"github.com/lagooneration/noaudio/matching"
)

func main() {
	jsonOutput := flag.Bool("json", false, "Emit the feature record and matches as JSON")
	topMatches := flag.Int("top", 3, "Number of plugin matches to print (text mode)")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <input.wav>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *verbose {
		logging.SetLevel(logging.DebugLevel)
	} else {
		logging.SetGlobalLogger(&logging.NoOpLogger{})
	}

	path := flag.Arg(0)
	samples, sampleRate, err := readWAVFirstChannel(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", path, err)
		os.Exit(1)
	}

	buffer, err := analysis.NewSampleBuffer(samples, sampleRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to analyze this audio file: %v\n", err)
		os.Exit(1)
	}

	record, err := analysis.NewAnalyzer(analysis.DefaultConfig()).ExtractFeatures(buffer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to analyze this audio file: %v\n", err)
		os.Exit(1)
	}

	matches, err := matching.FindMatches(record)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Plugin matching failed: %v\n", err)
		os.Exit(1)
	}

	if *jsonOutput {
		printJSON(record, matches)
		return
	}

	printReport(path, record, matches, *topMatches)
}

// readWAVFirstChannel decodes a WAV file and returns the first channel
// normalized to [-1, 1]
func readWAVFirstChannel(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, 0, fmt.Errorf("invalid wav buffer")
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth <= 0 {
		bitDepth = 16
	}

	return firstChannelFloats(buf, bitDepth), buf.Format.SampleRate, nil
}

// firstChannelFloats deinterleaves channel 0 of a PCM buffer whose samples
// are already normalized to [-1, 1] for the given bit depth
func firstChannelFloats(buf *audio.Float32Buffer, bitDepth int) []float64 {
	ch := buf.Format.NumChannels
	frames := len(buf.Data) / ch
	out := make([]float64, frames)
	for i := 0; i < frames; i++ {
		out[i] = float64(buf.Data[i*ch])
	}

	return out
}

func printJSON(record *analysis.FeatureRecord, matches []matching.PluginMatch) {
	payload := struct {
		Features *analysis.FeatureRecord `json:"features"`
		Matches  []matching.PluginMatch  `json:"matches"`
	}{record, matches}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding output: %v\n", err)
		os.Exit(1)
	}
}

func printReport(path string, record *analysis.FeatureRecord, matches []matching.PluginMatch, top int) {
	header := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgCyan)

	header.Printf("Analysis of %s (%.2fs @ %d Hz)\n\n", path, record.Duration, record.SampleRate)

	label.Println("Spectral")
	fmt.Printf("  centroid  %8.1f Hz\n", record.Spectral.Centroid)
	fmt.Printf("  bandwidth %8.1f Hz\n", record.Spectral.Bandwidth)
	fmt.Printf("  rolloff   %8.1f Hz\n", record.Spectral.Rolloff)
	fmt.Printf("  flatness  %8.3f\n", record.Spectral.Flatness)

	label.Println("Temporal")
	fmt.Printf("  zcr       %8.1f Hz\n", record.Temporal.ZeroCrossingRate)
	fmt.Printf("  rms       %8.4f\n", record.Temporal.RMS)
	fmt.Printf("  loudness  %8.1f dB\n", record.Temporal.Loudness)

	label.Println("Harmonic")
	fmt.Printf("  pitch        %8.1f Hz\n", record.Harmonic.Pitch)
	fmt.Printf("  harmonicity  %8.3f\n", record.Harmonic.Harmonicity)
	if record.Tempo > 0 {
		fmt.Printf("  tempo        %8.1f BPM\n", record.Tempo)
	}

	header.Println("\nSuggested plugins")
	if top > len(matches) {
		top = len(matches)
	}
	for i := 0; i < top; i++ {
		m := matches[i]
		if i == 0 {
			color.New(color.FgGreen, color.Bold).Printf("  %d. %s", i+1, m.Name)
		} else {
			fmt.Printf("  %d. %s", i+1, m.Name)
		}
		fmt.Printf("  (similarity %.2f, confidence %.2f)\n", m.Similarity, m.Confidence)
		fmt.Printf("     %s\n", m.Description)
	}
}
