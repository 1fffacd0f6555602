package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/dateutil"
)

type UserNameCmd struct {
	Name string `arg:"" optional:"" help:"Name to set. Omit to show the current name."`
}

func (c *UserNameCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if c.Name == "" {
		name, err := ctx.Store.GetSetting(constants.SettingUserName)
		if err != nil {
			return err
		}
		if name == "" {
			fmt.Println("No name set. Set one with: lifetrack user name <name>")
			return nil
		}
		fmt.Printf("%s, %s\n", dateutil.Greeting(time.Now()), name)
		return nil
	}

	if err := ctx.Store.SetSetting(constants.SettingUserName, c.Name); err != nil {
		return err
	}
	fmt.Printf("Name set to %q\n", c.Name)
	return nil
}

type UserOnboardCmd struct{}

// Run marks onboarding complete so first-run prompts stop appearing.
func (c *UserOnboardCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Store.SetSetting(constants.SettingHasCompletedOnboarding, "true"); err != nil {
		return err
	}
	fmt.Println("Onboarding marked complete")
	return nil
}
