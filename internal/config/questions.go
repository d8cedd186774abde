package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type questionsFile struct {
	Questions []string `yaml:"questions"`
}

// DefaultQuestions returns the built-in example questions shown in the
// sidebar when no questions file is present.
func DefaultQuestions() []string {
	return []string{
		"Bu makalenin temel katkısı nedir? 5 maddede özetle.",
		"Önerilen yöntemi adım adım açıkla. Varsayımlar neler?",
		"Deneylerde hangi veri setleri/metrikler kullanılmış? Sonuçları özetle.",
		"Kısıtlar (limitations) ve gelecek çalışmalar kısmı ne diyor?",
	}
}

// LoadQuestions reads the example questions from a YAML file. A missing or
// empty file falls back to the defaults.
func LoadQuestions(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultQuestions(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var qf questionsFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(qf.Questions) == 0 {
		return DefaultQuestions(), nil
	}
	return qf.Questions, nil
}
