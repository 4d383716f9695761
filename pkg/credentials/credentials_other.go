//go:build !windows

package credentials

// ReadFromStore is a no-op on platforms without a supported credentials
// store. Callers have to fall back to the configuration.
func (this *Credentials) ReadFromStore() (supported bool, err error) {
	return false, nil
}

func (this *Credentials) WriteToStore() (supported bool, err error) {
	return false, nil
}
