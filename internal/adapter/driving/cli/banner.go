package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/pergosolar/opticost-go/pkg/version"
)

// displayWelcomeBanner prints the welcome banner with version information.
func displayWelcomeBanner(versionStr string) {
	banner := `
           ____        _   _  _____          _
          / __ \      | | (_)/ ____|        | |
         | |  | |_ __ | |_ _| |     ___  ___| |_
         | |  | | '_ \| __| | |    / _ \/ __| __|
         | |__| | |_) | |_| | |___| (_) \__ \ |_
          \____/| .__/ \__|_|\_____\___/|___/\__|
                | |
                |_|
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("OptiCost Pergosolar CLI (v%s)", formattedVersion)))
}
