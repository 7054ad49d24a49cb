package constant

// AsciiArtLogo is rendered by the root command's long help output.
const AsciiArtLogo = `
 _
| |__   ___   ___  _ __ _   _ ___  __ _ _ __
| '_ \ / _ \ / _ \| '__| | | / __|/ _` + "`" + ` | '_ \
| |_) | (_) | (_) | |  | |_| \__ \ (_| | | | |
|_.__/ \___/ \___/|_|   \__,_|___/\__,_|_| |_|
`
