package glimpse

import (
	"path/filepath"

	semver3 "github.com/blang/semver"
	semver "github.com/blang/semver/v4"
	"github.com/rhysd/go-github-selfupdate/selfupdate"

	"github.com/glimpse/glimpse/internal/config"
	"github.com/glimpse/glimpse/internal/project"
	"github.com/glimpse/glimpse/internal/scan"
)

func selfUpdate() error {
	ver, err := semver.ParseTolerant(version)
	if err != nil {
		ver = semver.MustParse("0.0.0")
	}
	latest, err := selfupdate.UpdateSelf(semver3.MustParse(ver.String()), "glimpse/glimpse")
	if err != nil {
		return err
	}
	_ = latest
	return nil
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickInt64(cli int64, local, global *int64) int64 {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickFloat(cli float64, local, global *float64) float64 {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickSlice(cli []string, local, global []string) []string {
	if len(cli) > 0 {
		return cli
	}
	if len(local) > 0 {
		return local
	}
	return global
}

// app carries the resolved per-invocation state shared by commands.
type app struct {
	root        string
	projectName string
	settings    project.Settings
	scanOpts    scan.Options
	scanEnabled bool
}

// loadApp resolves configuration with CLI > local > global precedence and
// fills unset values with discovery defaults.
func loadApp(noScan bool, treeDepth int) app {
	root, err := filepath.Abs(flagRoot)
	if err != nil {
		root = flagRoot
	}

	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(root); err == nil {
		lcfg = c
	}

	settings := project.DefaultSettings()
	settings.SourceDirs = pickSlice(nil, lcfg.SourceDirs, gcfg.SourceDirs)
	settings.CoreFiles = pickSlice(nil, lcfg.CoreFiles, gcfg.CoreFiles)
	if dirs := pickSlice(nil, lcfg.IgnoreDirs, gcfg.IgnoreDirs); len(dirs) > 0 {
		settings.IgnoreDirs = dirs
	}
	if pats := pickSlice(nil, lcfg.IgnorePatterns, gcfg.IgnorePatterns); len(pats) > 0 {
		settings.IgnorePatterns = pats
	}
	if exts := pickSlice(nil, lcfg.Extensions, gcfg.Extensions); len(exts) > 0 {
		settings.Extensions = exts
	}
	if d := pickInt(treeDepth, lcfg.TreeDepth, gcfg.TreeDepth); d > 0 {
		settings.TreeDepth = d
	}
	settings.DefaultModule = pickString("", lcfg.DefaultModule, gcfg.DefaultModule)

	name := pickString("", lcfg.ProjectName, gcfg.ProjectName)
	if name == "" {
		name = project.DetectName(root)
	}

	thresholds := scan.DefaultThresholds()
	if v := pickFloat(0, lcfg.EntropyMinBits, gcfg.EntropyMinBits); v != 0 {
		thresholds.MinBits = v
	}
	if v := pickInt(0, lcfg.EntropyMinLength, gcfg.EntropyMinLength); v != 0 {
		thresholds.MinLength = v
	}
	if v := pickFloat(0, lcfg.AlphaNumMinRatio, gcfg.AlphaNumMinRatio); v != 0 {
		thresholds.MinAlphaNumRatio = v
	}

	opts := scan.Options{
		Thresholds:   thresholds,
		MaxFileBytes: pickInt64(0, lcfg.MaxFileBytes, gcfg.MaxFileBytes),
		MaxLines:     pickInt(0, lcfg.MaxLines, gcfg.MaxLines),
		Workers:      pickInt(0, lcfg.Workers, gcfg.Workers),
	}

	enabled := true
	switch {
	case noScan:
		enabled = false
	case lcfg.Scan != nil:
		enabled = *lcfg.Scan
	case gcfg.Scan != nil:
		enabled = *gcfg.Scan
	}

	return app{
		root:        root,
		projectName: name,
		settings:    settings,
		scanOpts:    opts,
		scanEnabled: enabled,
	}
}
