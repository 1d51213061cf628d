package churn

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Report summarises a single run.
type Report struct {
	RunID      string       `yaml:"runId"`
	Version    string       `yaml:"version,omitempty"`
	StartedAt  time.Time    `yaml:"startedAt"`
	FinishedAt time.Time    `yaml:"finishedAt"`
	Dir        string       `yaml:"dir"`
	Prefix     string       `yaml:"prefix"`
	FileCount  int          `yaml:"fileCount"`
	TextLength int          `yaml:"textLength"`
	Policy     Policy       `yaml:"policy"`
	Files      []FileRecord `yaml:"files"`
	Removed    int          `yaml:"removed"`
	Failures   []string     `yaml:"failures,omitempty"`
}

func (r *Runner) newReport() Report {
	return Report{
		RunID:      uuid.NewString(),
		Version:    r.cfg.Version,
		StartedAt:  r.now(),
		Dir:        r.cfg.Dir,
		Prefix:     r.cfg.Prefix,
		FileCount:  r.cfg.FileCount,
		TextLength: r.cfg.TextLength,
		Policy:     r.cfg.Policy,
	}
}

func (r *Runner) writeReport(report Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := afero.WriteFile(r.fs, r.cfg.ReportPath, data, fileMode); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	r.logger.Infof("===> Report written to %s", cyan(r.cfg.ReportPath))
	return nil
}

// ReadReport loads a report previously written by Run.
func ReadReport(fs afero.Fs, path string) (Report, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Report{}, err
	}

	var report Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return Report{}, fmt.Errorf("parse report %s: %w", path, err)
	}
	return report, nil
}

// failureMessages flattens joined errors into one message per failure.
func failureMessages(err error) []string {
	if err == nil {
		return nil
	}

	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		var messages []string
		for _, inner := range joined.Unwrap() {
			messages = append(messages, failureMessages(inner)...)
		}
		return messages
	}

	return []string{err.Error()}
}
