// Package backend binds the design-file and font services to host commands.
package backend

import (
	"context"

	"github.com/user/designlibre/pkg/command"
	"github.com/user/designlibre/pkg/designfile"
	"github.com/user/designlibre/pkg/fonts"
	"github.com/user/designlibre/pkg/ports"
)

// Command names as seen by the host.
const (
	CmdReadDesignFile    = "read_design_file"
	CmdWriteDesignFile   = "write_design_file"
	CmdGetSystemFonts    = "get_system_fonts"
	CmdGetFontInfo       = "get_font_info"
	CmdRenderFontPreview = "render_font_preview"
)

// ReadArgs are the arguments of read_design_file.
type ReadArgs struct {
	Path string `json:"path"`
}

// WriteArgs are the arguments of write_design_file.
type WriteArgs struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// FontInfoArgs are the arguments of get_font_info.
type FontInfoArgs struct {
	Name string `json:"name"`
}

// Services are the collaborators behind the commands.
type Services struct {
	Files     *designfile.Service
	Fonts     *fonts.Enumerator
	Inspector *fonts.Inspector
	Previewer *fonts.Previewer
}

// NewRegistry registers every command whose service is present.
func NewRegistry(s Services, logger ports.Logger) *command.Registry {
	r := command.NewRegistry(logger)

	if s.Files != nil {
		command.Register[ReadArgs, designfile.DesignFile](r, CmdReadDesignFile,
			command.Func[ReadArgs, designfile.DesignFile](func(_ context.Context, in ReadArgs) (designfile.DesignFile, error) {
				return s.Files.Read(in.Path)
			}))

		command.Register[WriteArgs, command.Void](r, CmdWriteDesignFile,
			command.Func[WriteArgs, command.Void](func(_ context.Context, in WriteArgs) (command.Void, error) {
				return nil, s.Files.Write(in.Path, in.Content)
			}))
	}

	if s.Fonts != nil {
		command.Register[command.Empty, fonts.FontList](r, CmdGetSystemFonts,
			command.Func[command.Empty, fonts.FontList](func(context.Context, command.Empty) (fonts.FontList, error) {
				return s.Fonts.List()
			}))
	}

	if s.Inspector != nil {
		command.Register[FontInfoArgs, fonts.FontInfo](r, CmdGetFontInfo,
			command.Func[FontInfoArgs, fonts.FontInfo](func(_ context.Context, in FontInfoArgs) (fonts.FontInfo, error) {
				return s.Inspector.Info(in.Name)
			}))
	}

	if s.Previewer != nil {
		command.Register[fonts.PreviewRequest, fonts.PreviewImage](r, CmdRenderFontPreview,
			command.Func[fonts.PreviewRequest, fonts.PreviewImage](func(_ context.Context, in fonts.PreviewRequest) (fonts.PreviewImage, error) {
				return s.Previewer.Render(in)
			}))
	}

	return r
}
