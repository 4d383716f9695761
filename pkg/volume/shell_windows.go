//go:build windows

package volume

func shellArgs(commandLine string) []string {
	return []string{"cmd.exe", "/C", commandLine}
}
