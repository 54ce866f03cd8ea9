package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/designlibre/pkg/adapters/osfilesystem"
	"github.com/user/designlibre/pkg/backend"
	"github.com/user/designlibre/pkg/bridge/gateway"
	"github.com/user/designlibre/pkg/bridge/stdio"
	"github.com/user/designlibre/pkg/designfile"
	"github.com/user/designlibre/pkg/fonts"
)

// ReadCmd prints a design file.
type ReadCmd struct {
	Path string
	JSON bool
}

// WriteCmd writes a design file from a flag or standard input.
type WriteCmd struct {
	Path    string
	Content *string
}

// FontsCmd lists installed font files.
type FontsCmd struct {
	JSON bool
}

// FontInfoCmd describes the faces of one font file.
type FontInfoCmd struct {
	Name string
}

// PreviewCmd renders a text sample with an installed font. The image
// format follows the output extension.
type PreviewCmd struct {
	Name     string
	Output   string
	Text     string
	Size     float64
	MaxWidth int
}

// ServeCmd runs the WebSocket gateway.
type ServeCmd struct {
	Addr  string
	Token string
}

// StdioCmd serves frames on standard input and output.
type StdioCmd struct{}

// VersionCmd shows version information.
type VersionCmd struct{}

// invoke runs a registered command with args encoded as its payload and
// decodes the result into out. out may be nil.
func (s *session) invoke(ctx context.Context, name string, args, out any) error {
	var payload json.RawMessage
	if args != nil {
		b, err := json.Marshal(args)
		if err != nil {
			return fmt.Errorf("encode arguments: %w", err)
		}
		payload = b
	}

	result, err := s.reg.Invoke(ctx, name, payload)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(result, out)
}

func usageError(msg string) error {
	return errors.New(l10n.T(msg))
}

// oneArg returns the single positional argument or a usage error.
func oneArg(c *cli.Context, msg string) (string, error) {
	if c.NArg() != 1 {
		return "", usageError(msg)
	}
	return c.Args().First(), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (cmd *ReadCmd) command(g *Globals) *cli.Command {
	return &cli.Command{
		Name:      "read",
		Usage:     l10n.T("Print the content of a design file"),
		ArgsUsage: "PATH",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: l10n.T("Print the path and content as JSON"), Destination: &cmd.JSON},
		},
		Action: func(c *cli.Context) (err error) {
			if cmd.Path, err = oneArg(c, "read requires exactly one PATH"); err != nil {
				return err
			}
			return cmd.Run(c.Context, g)
		},
	}
}

// Run executes the read command.
func (cmd *ReadCmd) Run(ctx context.Context, g *Globals) error {
	s, err := g.newSession()
	if err != nil {
		return err
	}

	var file designfile.DesignFile
	if err := s.invoke(ctx, backend.CmdReadDesignFile, backend.ReadArgs{Path: cmd.Path}, &file); err != nil {
		return err
	}
	if cmd.JSON {
		return printJSON(g.out, file)
	}
	_, err = io.WriteString(g.out, file.Content)
	return err
}

func (cmd *WriteCmd) command(g *Globals) *cli.Command {
	return &cli.Command{
		Name:      "write",
		Usage:     l10n.T("Write a design file from --content or standard input"),
		ArgsUsage: "PATH",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "content", Usage: l10n.T("Content to write instead of reading standard input")},
		},
		Action: func(c *cli.Context) (err error) {
			if cmd.Path, err = oneArg(c, "write requires exactly one PATH"); err != nil {
				return err
			}
			if c.IsSet("content") {
				content := c.String("content")
				cmd.Content = &content
			}
			return cmd.Run(c.Context, g)
		},
	}
}

// Run executes the write command.
func (cmd *WriteCmd) Run(ctx context.Context, g *Globals) error {
	s, err := g.newSession()
	if err != nil {
		return err
	}

	var content string
	if cmd.Content != nil {
		content = *cmd.Content
	} else {
		data, err := io.ReadAll(g.in)
		if err != nil {
			return fmt.Errorf("read standard input: %w", err)
		}
		content = string(data)
	}

	args := backend.WriteArgs{Path: cmd.Path, Content: content}
	if err := s.invoke(ctx, backend.CmdWriteDesignFile, args, nil); err != nil {
		return err
	}
	s.log.Info("Saved %s", args.Path)
	return nil
}

func (cmd *FontsCmd) command(g *Globals) *cli.Command {
	return &cli.Command{
		Name:  "fonts",
		Usage: l10n.T("List installed font files"),
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: l10n.T("Print the list as a JSON array"), Destination: &cmd.JSON},
		},
		Action: func(c *cli.Context) error {
			return cmd.Run(c.Context, g)
		},
	}
}

// Run executes the fonts command.
func (cmd *FontsCmd) Run(ctx context.Context, g *Globals) error {
	s, err := g.newSession()
	if err != nil {
		return err
	}

	var list fonts.FontList
	if err := s.invoke(ctx, backend.CmdGetSystemFonts, nil, &list); err != nil {
		return err
	}
	if cmd.JSON {
		return printJSON(g.out, list)
	}
	for _, name := range list {
		fmt.Fprintln(g.out, name)
	}
	return nil
}

func (cmd *FontInfoCmd) command(g *Globals) *cli.Command {
	return &cli.Command{
		Name:      "font-info",
		Usage:     l10n.T("Show the faces contained in a font file"),
		ArgsUsage: "NAME",
		Action: func(c *cli.Context) (err error) {
			if cmd.Name, err = oneArg(c, "font-info requires exactly one NAME"); err != nil {
				return err
			}
			return cmd.Run(c.Context, g)
		},
	}
}

// Run executes the font-info command.
func (cmd *FontInfoCmd) Run(ctx context.Context, g *Globals) error {
	s, err := g.newSession()
	if err != nil {
		return err
	}

	var info fonts.FontInfo
	if err := s.invoke(ctx, backend.CmdGetFontInfo, backend.FontInfoArgs{Name: cmd.Name}, &info); err != nil {
		return err
	}
	return printJSON(g.out, info)
}

func (cmd *PreviewCmd) command(g *Globals) *cli.Command {
	return &cli.Command{
		Name:      "preview",
		Usage:     l10n.T("Render a text sample with an installed font to PNG or JPEG"),
		ArgsUsage: "NAME",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: l10n.T("Output file path (.png, .jpg or .jpeg)"), Destination: &cmd.Output},
			&cli.StringFlag{Name: "text", Usage: l10n.T("Sample text"), Destination: &cmd.Text},
			&cli.Float64Flag{Name: "size", Usage: l10n.T("Font size in points"), Destination: &cmd.Size},
			&cli.IntFlag{Name: "max-width", Usage: l10n.T("Scale the image down to at most this width"), Destination: &cmd.MaxWidth},
		},
		Action: func(c *cli.Context) (err error) {
			if cmd.Name, err = oneArg(c, "preview requires exactly one NAME"); err != nil {
				return err
			}
			return cmd.Run(c.Context, g)
		},
	}
}

// Run executes the preview command.
func (cmd *PreviewCmd) Run(ctx context.Context, g *Globals) error {
	s, err := g.newSession()
	if err != nil {
		return err
	}

	req := fonts.PreviewRequest{
		Name:     cmd.Name,
		Text:     cmd.Text,
		Size:     cmd.Size,
		MaxWidth: cmd.MaxWidth,
		Format:   formatForPath(cmd.Output),
	}
	var img fonts.PreviewImage
	if err := s.invoke(ctx, backend.CmdRenderFontPreview, req, &img); err != nil {
		return err
	}

	if err := osfilesystem.New().WriteFile(cmd.Output, img.Data); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	s.log.Info("Preview saved to %s (%dx%d)", cmd.Output, img.Width, img.Height)
	return nil
}

// formatForPath picks JPEG for .jpg and .jpeg outputs and PNG otherwise.
func formatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return fonts.FormatJPEG
	default:
		return fonts.FormatPNG
	}
}

func (cmd *ServeCmd) command(g *Globals) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: l10n.T("Serve commands to the editor over WebSocket"),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: l10n.T("Listen address (loopback only)"), Destination: &cmd.Addr},
			&cli.StringFlag{Name: "token", Usage: l10n.T("Token clients must pass as ?token="), EnvVars: []string{"DESIGNLIBRE_TOKEN"}, Destination: &cmd.Token},
		},
		Action: func(c *cli.Context) error {
			return cmd.Run(c.Context, g)
		},
	}
}

// Run executes the serve command.
func (cmd *ServeCmd) Run(ctx context.Context, g *Globals) error {
	s, err := g.newSession()
	if err != nil {
		return err
	}
	if cmd.Addr != "" {
		s.cfg.Gateway.Addr = cmd.Addr
	}
	if cmd.Token != "" {
		s.cfg.Gateway.Token = cmd.Token
	}

	ctx, cancel := signalContext(ctx, s.log)
	defer cancel()

	srv := gateway.NewServer(s.reg, s.cfg.Gateway.Addr, s.cfg.Gateway.Token, s.log)
	go func() {
		select {
		case <-srv.Ready():
			// The host reads the bound address from stdout.
			fmt.Fprintf(g.out, "ws://%s/ws\n", srv.BoundAddr())
		case <-ctx.Done():
		}
	}()
	return srv.Start(ctx)
}

func (cmd *StdioCmd) command(g *Globals) *cli.Command {
	return &cli.Command{
		Name:  "stdio",
		Usage: l10n.T("Serve commands as newline-delimited JSON on standard input and output"),
		Action: func(c *cli.Context) error {
			return cmd.Run(c.Context, g)
		},
	}
}

// Run executes the stdio command.
func (cmd *StdioCmd) Run(ctx context.Context, g *Globals) error {
	s, err := g.newSession()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(ctx, s.log)
	defer cancel()

	return stdio.New(s.reg, g.in, g.out, s.log).Serve(ctx)
}

func (cmd *VersionCmd) command(g *Globals) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: l10n.T("Show version information"),
		Action: func(c *cli.Context) error {
			return cmd.Run(g)
		},
	}
}

// Run executes the version command.
func (cmd *VersionCmd) Run(g *Globals) error {
	fmt.Fprintln(g.out, l10n.F("designlibre version %s", version))
	return nil
}
