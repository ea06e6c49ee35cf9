package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/outlinehq/hoist/pkg/app"
	"github.com/outlinehq/hoist/pkg/commands/options"
	"github.com/outlinehq/hoist/pkg/store"
)

func addConfig(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "read or change stored settings",
		Long: options.Wrap80("Config lists the stored settings, prints one " +
			"value when given a key, or writes one when given a key and a " +
			"value. Keys: mainColor, fileName, fontFamily, fontSize, theme."),
		Example: `
hoist config
hoist config mainColor
hoist config mainColor "#87d7ff"
hoist config theme light
`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				printConfig(s)
				return nil
			}
			if len(args) == 1 {
				v, err := configValue(s, args[0])
				if err != nil {
					return oo.HandleError(err)
				}
				fmt.Println(v)
				return nil
			}

			if err := setConfigValue(s, args[0], args[1]); err != nil {
				return oo.HandleError(err)
			}
			return s.Save()
		},
	}

	topLevel.AddCommand(cmd)
}

func printConfig(s *app.Session) {
	set := s.Settings()
	fmt.Printf("mainColor:  %s\n", set.MainColor)
	fmt.Printf("fileName:   %s\n", set.FileName)
	fmt.Printf("fontFamily: %s\n", set.FontFamily)
	fmt.Printf("fontSize:   %d\n", set.FontSize)
	fmt.Printf("theme:      %s\n", s.Theme())
	fmt.Printf("db:         %s\n", s.DBPath())
}

func configValue(s *app.Session, key string) (string, error) {
	set := s.Settings()
	switch key {
	case "mainColor":
		return set.MainColor, nil
	case "fileName":
		return set.FileName, nil
	case "fontFamily":
		return set.FontFamily, nil
	case "fontSize":
		return strconv.Itoa(set.FontSize), nil
	case "theme":
		return s.Theme(), nil
	}
	return "", fmt.Errorf("unknown setting %q", key)
}

func setConfigValue(s *app.Session, key, value string) error {
	set := s.Settings()
	switch key {
	case "mainColor":
		set.MainColor = value
	case "fileName":
		set.FileName = value
	case "fontFamily":
		set.FontFamily = value
	case "fontSize":
		size, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("fontSize wants a number, got %q", value)
		}
		set.FontSize = size
	case "theme":
		if value != store.ThemeLight && value != store.ThemeDark {
			return fmt.Errorf("theme is %q or %q", store.ThemeLight, store.ThemeDark)
		}
		s.SetTheme(value)
		return nil
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	s.UpdateSettings(set)
	return nil
}
