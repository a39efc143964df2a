// ABOUTME: Assistant copy configuration with built-in defaults and YAML overrides
// ABOUTME: Lets a deployment rename the assistant or change suggestions without a rebuild

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Copy is the fixed text the assistant speaks and shows
type Copy struct {
	// AssistantTitle is the card title on the welcome screen
	AssistantTitle string `yaml:"assistant_title"`

	// WelcomeShort is spoken when the conversation starts
	WelcomeShort string `yaml:"welcome_short"`

	// WelcomeExamples are example utterances shown on the welcome card
	WelcomeExamples []string `yaml:"welcome_examples"`

	// HelpShort is the display text of the help turn
	HelpShort string `yaml:"help_short"`

	// PopularTopics are listed by the help turn
	PopularTopics []string `yaml:"popular_topics"`

	// Suggestions are the quick-reply chips attached to screen responses
	Suggestions []string `yaml:"suggestions"`

	// Apology is used when the search service fails
	Apology string `yaml:"apology"`
}

// DefaultCopy returns the built-in assistant copy
func DefaultCopy() Copy {
	return Copy{
		AssistantTitle: "Programmatic Ponderings Search",
		WelcomeShort:   "What topic are you interested in reading about?",
		WelcomeExamples: []string{
			"Find a post about GCP",
			"I'd like to read about Kubernetes",
			"I'm interested in Docker",
		},
		HelpShort: "Need a little help?",
		PopularTopics: []string{
			"Kubernetes", "Docker", "Cloud", "DevOps", "AWS",
			"Spring", "Azure", "Messaging", "GCP",
		},
		Suggestions: []string{"tell me about Docker", "help", "cancel"},
		Apology:     "Sorry, I'm having trouble reaching the blog right now. Please try again in a little while.",
	}
}

// LoadCopyFile reads a YAML file and overlays it on the default copy.
// Keys missing from the file keep their default values.
func LoadCopyFile(path string) (Copy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Copy{}, fmt.Errorf("failed to read responses file: %w", err)
	}

	c := DefaultCopy()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Copy{}, fmt.Errorf("failed to parse responses file %s: %w", path, err)
	}

	return c, nil
}
