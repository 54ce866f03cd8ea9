package backend

import (
	"github.com/user/designlibre/pkg/adapters/billyfs"
	"github.com/user/designlibre/pkg/adapters/fontdirs"
	"github.com/user/designlibre/pkg/adapters/ggrenderer"
	"github.com/user/designlibre/pkg/adapters/osfilesystem"
	"github.com/user/designlibre/pkg/adapters/sfntinspector"
	"github.com/user/designlibre/pkg/config"
	"github.com/user/designlibre/pkg/designfile"
	"github.com/user/designlibre/pkg/fonts"
	"github.com/user/designlibre/pkg/ports"
)

// Build creates the services for cfg on the real filesystem. Design files
// go through a rooted billy filesystem when cfg.Root is set; font
// directories are always read from the host filesystem.
func Build(cfg config.Config, logger ports.Logger) Services {
	return BuildWith(cfg, fontdirs.ForCurrentPlatform(fontdirs.Options{
		LegacyLinuxListing: cfg.Fonts.LegacyLinuxListing,
	}), logger)
}

// BuildWith is Build with an explicit font directory provider.
func BuildWith(cfg config.Config, provider ports.FontDirectoryProvider, logger ports.Logger) Services {
	hostFS := osfilesystem.New()

	var designFS ports.FileSystem = hostFS
	if cfg.Root != "" {
		designFS = billyfs.NewRooted(cfg.Root)
	}

	provider = fontdirs.WithExtra(provider, cfg.Fonts.ExtraDirs...)

	var opts []fonts.Option
	if cfg.Fonts.WarnOnSkip {
		opts = append(opts, fonts.WithDirErrorPolicy(fonts.SkipWithWarning(logger.WithComponent("fonts"))))
	}
	enum := fonts.NewEnumerator(hostFS, provider, logger, opts...)

	return Services{
		Files:     designfile.NewService(designFS, logger),
		Fonts:     enum,
		Inspector: fonts.NewInspector(enum, hostFS, sfntinspector.New()),
		Previewer: fonts.NewPreviewer(enum, ggrenderer.New(), fonts.PreviewRequest{
			Text:     cfg.Preview.Text,
			Size:     cfg.Preview.Size,
			MaxWidth: cfg.Preview.MaxWidth,
		}),
	}
}
