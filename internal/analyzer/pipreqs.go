package analyzer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
)

// DefaultManifests is the ordered candidate list searched for a requirements
// manifest in the target directory; the first existing file wins.
var DefaultManifests = []string{
	"requirements.txt",
	"requirements-dev.txt",
	"requirements.in",
}

// PipCheckReqsConfig names the two pip-check-reqs executables and the
// manifest candidates. Zero values fall back to the standard tool names and
// DefaultManifests.
type PipCheckReqsConfig struct {
	MissingTool string
	ExtraTool   string
	Manifests   []string
}

// PipCheckReqs wraps the pip-check-reqs pair: pip-missing-reqs finds imports
// absent from the manifest, pip-extra-reqs finds declared-but-unimported
// requirements.
type PipCheckReqs struct {
	cmd         CommandRunner
	missingTool string
	extraTool   string
	manifests   []string
}

func NewPipCheckReqs(cmd CommandRunner, cfg PipCheckReqsConfig) *PipCheckReqs {
	p := &PipCheckReqs{
		cmd:         cmd,
		missingTool: cfg.MissingTool,
		extraTool:   cfg.ExtraTool,
		manifests:   cfg.Manifests,
	}
	if p.missingTool == "" {
		p.missingTool = "pip-missing-reqs"
	}
	if p.extraTool == "" {
		p.extraTool = "pip-extra-reqs"
	}
	if len(p.manifests) == 0 {
		p.manifests = DefaultManifests
	}
	return p
}

// Scan runs both sub-checks against dir. The runs are independent but
// executed sequentially so the error-code precedence (missing-check first)
// stays deterministic. Stderr from either tool is retained as a diagnostic
// even on a normal exit; it never affects the outcome by itself.
func (p *PipCheckReqs) Scan(ctx context.Context, dir string) (*Report, error) {
	logger.WithField("path", dir).Info("running pip-check-reqs analysis")

	args := []string{dir}
	if manifest := p.selectManifest(dir); manifest != "" {
		logger.WithField("manifest", manifest).Debug("using requirements manifest")
		args = append(args, "--requirements-file", manifest)
	}

	missingOut, missingErr, missingCode, err := p.cmd.Run(ctx, dir, p.missingTool, args...)
	if err != nil {
		return nil, &ExitError{
			Code:    2,
			Message: fmt.Sprintf("%s failed to execute", p.missingTool),
			Err:     err,
		}
	}
	extraOut, extraErr, extraCode, err := p.cmd.Run(ctx, dir, p.extraTool, args...)
	if err != nil {
		return nil, &ExitError{
			Code:    2,
			Message: fmt.Sprintf("%s failed to execute", p.extraTool),
			Err:     err,
		}
	}

	diagnostics := make(map[string]string)
	if missingErr != "" {
		diagnostics[p.missingTool] = missingErr
	}
	if extraErr != "" {
		diagnostics[p.extraTool] = extraErr
	}

	if !normalExit(missingCode) || !normalExit(extraCode) {
		// First abnormal code in declaration order wins.
		code := missingCode
		if normalExit(missingCode) {
			code = extraCode
		}
		return nil, &ExitError{
			Code:        exitCodeOr(code, 2),
			Message:     "pip-check-reqs commands exited with an unexpected status",
			Diagnostics: diagnostics,
		}
	}

	rep := &Report{
		Missing: parsePipCheckOutput(missingOut),
		Unused:  parsePipCheckOutput(extraOut),
		Output:  make(map[string]string),
	}
	if len(diagnostics) > 0 {
		rep.Diagnostics = diagnostics
	}
	if out := strings.TrimSpace(missingOut); out != "" {
		rep.Output[p.missingTool] = out
	}
	if out := strings.TrimSpace(extraOut); out != "" {
		rep.Output[p.extraTool] = out
	}
	return rep, nil
}

// selectManifest returns the first existing manifest candidate in dir, or ""
// when none exists and the tools should rely on their own defaults.
func (p *PipCheckReqs) selectManifest(dir string) string {
	for _, name := range p.manifests {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
