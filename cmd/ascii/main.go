// Command ascii draws an image as colored text in the current
// terminal, matching characters against a brightness profile of the
// terminal's font. The image stays on screen and is redrawn on every
// resize until q, Esc, or Ctrl-C is pressed.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jaxydog/ascii"
	"github.com/jaxydog/ascii/fontfind"
	"github.com/jaxydog/ascii/imageutil"
)

var rootCmd = &cobra.Command{
	Use:   "ascii <image>",
	Short: "Render an image as colored text in the terminal",
	Long: `ascii renders a raster image as colored text.

Every usable character of the chosen font is rasterized once and
measured for brightness; the resulting profile is cached per font and
reused to pick the character that best matches each image region.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringP("font", "f", "",
		"terminal font family name or path to a font file")
	rootCmd.Flags().BoolP("clean", "c", false,
		"delete all cached font profiles before running")
	rootCmd.Flags().BoolP("plain", "p", false,
		"draw the image without color")

	viper.SetEnvPrefix("ASCII")
	viper.AutomaticEnv()
	viper.BindPFlag("font", rootCmd.Flags().Lookup("font"))
	viper.BindPFlag("clean", rootCmd.Flags().Lookup("clean"))
	viper.BindPFlag("plain", rootCmd.Flags().Lookup("plain"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cache, err := openCache()
	if err != nil {
		return err
	}
	if viper.GetBool("clean") {
		if err := cache.Clear(); err != nil {
			return err
		}
	}

	img, err := imageutil.Load(args[0])
	if err != nil {
		return err
	}

	profile, err := loadProfile(cache, viper.GetString("font"))
	if err != nil {
		return err
	}

	return runLoop(img, profile, !viper.GetBool("plain"))
}

// openCache resolves the per-user profile cache root.
func openCache() (*ascii.Cache, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("resolving cache directory: %w", err)
	}
	return ascii.NewCache(filepath.Join(dir, "ascii", "profiles")), nil
}

// loadProfile returns the cached profile for the resolved font,
// computing and storing one on a cache miss.
func loadProfile(cache *ascii.Cache, family string) (ascii.Profile, error) {
	font, err := fontfind.Resolve(family)
	if err != nil {
		return nil, err
	}

	if profile, ok, err := cache.Load(font.Name); err != nil {
		return nil, err
	} else if ok {
		return profile, nil
	}

	profile, err := ascii.ProfileFont(font.Name, font.Data)
	if err != nil {
		return nil, err
	}
	if err := cache.Store(font.Name, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
