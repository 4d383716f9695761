//go:build !windows

package volume

func shellArgs(commandLine string) []string {
	return []string{"/bin/sh", "-c", commandLine}
}
