package internal

import (
	"fmt"
	"regexp"
	"strings"

	"nube/internal/wordcloud"
)

// Stop count bounds exposed by the configuration form.
const (
	MinStops = 3
	MaxStops = 10
)

// CloudConfig is the active working configuration: what to render and how.
// JSON tags match the save file written by earlier releases so existing
// saved_configs.json files load unchanged.
type CloudConfig struct {
	FinalColor string   `json:"final_color" yaml:"FinalColor"`
	NumStops   int      `json:"n_stops" yaml:"NumStops"`
	Words      []string `json:"words" yaml:"Words"`
	Width      int      `json:"width" yaml:"Width"`
	Height     int      `json:"height" yaml:"Height"`
}

// Validate checks all form-level bounds in one pass.
func (c CloudConfig) Validate() error {
	if _, err := wordcloud.ParseHex(c.FinalColor); err != nil {
		return err
	}
	if c.NumStops < MinStops || c.NumStops > MaxStops {
		return fmt.Errorf("stop count %d out of range [%d, %d]", c.NumStops, MinStops, MaxStops)
	}
	if c.Width < wordcloud.MinDimension || c.Width > wordcloud.MaxDimension {
		return fmt.Errorf("width %d out of range [%d, %d]", c.Width, wordcloud.MinDimension, wordcloud.MaxDimension)
	}
	if c.Height < wordcloud.MinDimension || c.Height > wordcloud.MaxDimension {
		return fmt.Errorf("height %d out of range [%d, %d]", c.Height, wordcloud.MinDimension, wordcloud.MaxDimension)
	}
	if len(c.Words) == 0 {
		return fmt.Errorf("word list is empty")
	}
	return nil
}

// Stops computes the gradient stops for the configured final color.
func (c CloudConfig) Stops() ([]wordcloud.RGB, error) {
	final, err := wordcloud.ParseHex(c.FinalColor)
	if err != nil {
		return nil, err
	}
	return wordcloud.Stops(final, c.NumStops)
}

// Settings holds app-level preferences persisted as YAML.
type Settings struct {
	OutputDir    string `yaml:"OutputDir"`
	SaveFile     string `yaml:"SaveFile"`
	EnableSounds bool   `yaml:"EnableSounds"`

	// DefaultConfig seeds the active configuration on startup.
	DefaultConfig CloudConfig `yaml:"DefaultConfig"`
}

// DefaultCloudConfig mirrors the word list and settings the tool has always
// started with.
func DefaultCloudConfig() CloudConfig {
	return CloudConfig{
		FinalColor: "#ff00d3",
		NumStops:   5,
		Words: []string{
			"algún", "ningún", "otro", "todo", "cualquier",
			"cualquiera", "poco", "mucho", "varios", "demasiado",
			"bastante", "cada", "cierto", "ninguno", "alguno",
			"mismo", "semejante", "tantos", "diverso", "suficiente",
		},
		Width:  2000,
		Height: 1600,
	}
}

func defaultSettings() *Settings {
	return &Settings{
		OutputDir:     "wordclouds",
		SaveFile:      "saved_configs.json",
		EnableSounds:  true,
		DefaultConfig: DefaultCloudConfig(),
	}
}

var wordSeparators = regexp.MustCompile(`[,\n;]+`)

// SplitWords parses free-form word input: comma, semicolon, or newline
// separated, surrounding whitespace trimmed, blanks dropped.
func SplitWords(input string) []string {
	var words []string
	for _, w := range wordSeparators.Split(input, -1) {
		w = strings.TrimSpace(w)
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// JoinWords is the inverse presentation used to prefill the words field.
func JoinWords(words []string) string {
	return strings.Join(words, "\n")
}
