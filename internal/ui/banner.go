package ui

import "fmt"

const bannerArt = `
    _    _     ____  _   _ ___ _   _
   / \  | |   |  _ \| | | |_ _| \ | |
  / _ \ | |   | | | | | | || ||  \| |
 / ___ \| |___| |_| | |_| || || |\  |
/_/   \_\_____|____/ \___/|___|_| \_|
`

// Banner prints the startup banner with the model line.
func (c *Console) Banner(model string) {
	fmt.Fprintf(c.out, "%s%s%s", ansiCyan, bannerArt, ansiReset)
	fmt.Fprintf(c.out, "🐉 %sAlduin%s - a minimal CLI coding agent\n", ansiBold, ansiReset)
	fmt.Fprintf(c.out, "%s   model: %s | Ctrl+D to leave%s\n\n", ansiDim, model, ansiReset)
}
