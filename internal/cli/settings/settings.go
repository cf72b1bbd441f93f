package settings

import (
	"fmt"
	"sort"

	"vitalog/internal/cli"
	"vitalog/internal/constants"
	"vitalog/internal/models"
	"vitalog/internal/utils"
)

type SettingsListCmd struct{}

func (c *SettingsListCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	kv := models.SettingsToMap(settings)
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Println("Current Settings:")
	for _, k := range keys {
		fmt.Printf("  %-32s %s\n", k, kv[k])
	}
	return nil
}

type SettingsGetCmd struct {
	Key string `arg:"" help:"Setting key, e.g. profile.timezone."`
}

func (c *SettingsGetCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	kv := models.SettingsToMap(settings)
	value, ok := kv[c.Key]
	if !ok {
		return fmt.Errorf("unknown setting: %s", c.Key)
	}
	fmt.Println(value)
	return nil
}

type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting key, e.g. profile.timezone."`
	Value string `arg:"" help:"New value."`
}

func (c *SettingsSetCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	kv := models.SettingsToMap(settings)
	if _, ok := kv[c.Key]; !ok {
		return fmt.Errorf("unknown setting: %s", c.Key)
	}

	if c.Key == constants.SettingTimezone && !utils.ValidateTimezone(c.Value) {
		return fmt.Errorf("invalid timezone: %s", c.Value)
	}
	if c.Key == constants.SettingReminderTime {
		if err := utils.ValidateClock(c.Value); err != nil {
			return err
		}
	}

	kv[c.Key] = c.Value
	updated, err := models.MapToSettings(kv)
	if err != nil {
		return err
	}
	models.ApplyDefaultSettings(&updated)

	if err := ctx.Store.SaveSettings(updated); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Printf("✓ %s = %s\n", c.Key, c.Value)
	return nil
}
