// Package bundle links the JavaScript fences of a demo into a single script.
//
// Every fence becomes a module in an in-memory file table. Fences without a
// filename are concatenated into the entry module "@main". Imports are
// resolved against that table only:
//
//   - relative and absolute specifiers resolve like file paths from the
//     importing module and fail when nothing matches;
//   - bare specifiers ("utils", "lit") resolve to "@utils" or "/utils" when a
//     fence defines one of them and are otherwise left as external imports.
package bundle

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

const (
	// Sentinel prefixes virtual module names that are not file paths.
	Sentinel = "@"
	// Entry is the module holding every fence without a filename.
	Entry = Sentinel + "main"

	namespace = "codedemo"
)

// Module is one JavaScript fragment. Fragments sharing a filename are joined
// in order.
type Module struct {
	Filename string
	Code     string
}

// Error reports the messages of a failed build.
type Error struct {
	Messages []api.Message
}

func (e *Error) Error() string {
	texts := make([]string, 0, len(e.Messages))

	for _, msg := range e.Messages {
		text := msg.Text
		if msg.Location != nil {
			text = fmt.Sprintf("%s:%d:%d: %s", msg.Location.File, msg.Location.Line, msg.Location.Column, msg.Text)
		}

		texts = append(texts, text)
	}

	return "bundle: " + strings.Join(texts, "; ")
}

// Bundle builds modules into one ES module script. It returns an empty string
// without running the bundler when there are no modules.
func Bundle(ctx context.Context, modules []Module) (string, error) {
	if len(modules) == 0 {
		return "", nil
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	files, err := newFileTable(modules)
	if err != nil {
		return "", fmt.Errorf("bundle: %w", err)
	}

	result := api.Build(api.BuildOptions{
		EntryPoints: []string{Entry},
		Bundle:      true,
		Write:       false,
		Format:      api.FormatESModule,
		Platform:    api.PlatformBrowser,
		LogLevel:    api.LogLevelSilent,
		Plugins:     []api.Plugin{files.plugin()},
	})

	if len(result.Errors) > 0 {
		return "", &Error{Messages: result.Errors}
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if len(result.OutputFiles) == 0 {
		return "", nil
	}

	return string(result.OutputFiles[0].Contents), nil
}

func (t *fileTable) plugin() api.Plugin {
	return api.Plugin{
		Name: namespace,
		Setup: func(build api.PluginBuild) {
			build.OnResolve(api.OnResolveOptions{Filter: `.*`}, t.onResolve)
			build.OnLoad(api.OnLoadOptions{Filter: `.*`, Namespace: namespace}, t.onLoad)
		},
	}
}

func (t *fileTable) onResolve(args api.OnResolveArgs) (api.OnResolveResult, error) {
	if args.Kind == api.ResolveEntryPoint {
		return api.OnResolveResult{Path: Entry, Namespace: namespace}, nil
	}

	if isBare(args.Path) {
		if resolved, ok := t.resolveBare(args.Path); ok {
			return api.OnResolveResult{Path: resolved, Namespace: namespace}, nil
		}

		return api.OnResolveResult{Path: args.Path, External: true}, nil
	}

	target := args.Path
	if !strings.HasPrefix(target, "/") {
		target = path.Join(importerDir(args.Importer), target)
	}

	resolved, ok := t.lookup(path.Clean(target))
	if !ok {
		return api.OnResolveResult{}, fmt.Errorf("cannot resolve %q from %q", args.Path, args.Importer)
	}

	return api.OnResolveResult{Path: resolved, Namespace: namespace}, nil
}

func (t *fileTable) resolveBare(spec string) (string, bool) {
	if strings.HasPrefix(spec, Sentinel) && t.has(spec) {
		return spec, true
	}

	if t.has(Sentinel + spec) {
		return Sentinel + spec, true
	}

	return t.lookup(path.Join("/", spec))
}

func (t *fileTable) onLoad(args api.OnLoadArgs) (api.OnLoadResult, error) {
	contents, err := t.read(args.Path)
	if err != nil {
		return api.OnLoadResult{}, err
	}

	return api.OnLoadResult{Contents: &contents, Loader: loader(args.Path)}, nil
}

func isBare(spec string) bool {
	return !strings.HasPrefix(spec, "/") &&
		!strings.HasPrefix(spec, "./") &&
		!strings.HasPrefix(spec, "../") &&
		spec != "." && spec != ".."
}

// importerDir is the directory relative imports of importer resolve from.
// Sentinel modules live at the root.
func importerDir(importer string) string {
	if strings.HasPrefix(importer, "/") {
		return path.Dir(importer)
	}

	return "/"
}

func loader(virtual string) api.Loader {
	switch path.Ext(virtual) {
	case ".ts", ".mts":
		return api.LoaderTS
	case ".tsx":
		return api.LoaderTSX
	case ".jsx":
		return api.LoaderJSX
	case ".json":
		return api.LoaderJSON
	default:
		return api.LoaderJS
	}
}
