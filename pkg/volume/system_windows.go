//go:build windows

package volume

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	log "github.com/echocat/slf4g"
	"github.com/go-ole/go-ole"
	"github.com/moutend/go-wca/pkg/wca"
)

// System mutes the default render endpoint using the Windows Core Audio
// API.
type System struct {
	mutex sync.Mutex
	muted *bool
}

func NewSystem() (Actuator, error) {
	result := &System{}
	if err := result.withEndpoint(func(device string, _ *wca.IAudioEndpointVolume) error {
		log.With("device", device).
			Debug("Default audio output device discovered.")
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

func (this *System) Mute() error {
	return this.apply(true)
}

func (this *System) Restore() error {
	return this.apply(false)
}

func (this *System) apply(muted bool) error {
	this.mutex.Lock()
	defer this.mutex.Unlock()

	return this.withEndpoint(func(device string, aev *wca.IAudioEndpointVolume) error {
		if err := aev.SetMute(muted, nil); err != nil {
			return fmt.Errorf("cannot set mute=%v of audio device %q: %w", muted, device, err)
		}
		if this.muted == nil || *this.muted != muted {
			log.With("muted", muted).
				With("device", device).
				Debug("Volume changed.")
		}
		this.muted = &muted
		return nil
	})
}

func (this *System) withEndpoint(f func(device string, aev *wca.IAudioEndpointVolume) error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		var oErr *ole.OleError
		// S_FALSE: already initialized on this thread.
		if !errors.As(err, &oErr) || oErr.Code() != 1 {
			return fmt.Errorf("failed to initialize ole: %w", err)
		}
	}
	defer ole.CoUninitialize()

	var de *wca.IMMDeviceEnumerator
	if err := wca.CoCreateInstance(wca.CLSID_MMDeviceEnumerator, 0, wca.CLSCTX_ALL, wca.IID_IMMDeviceEnumerator, &de); err != nil {
		return fmt.Errorf("cannot create IMMDeviceEnumerator instance: %w", err)
	}
	defer de.Release()

	var device *wca.IMMDevice
	if err := de.GetDefaultAudioEndpoint(wca.ERender, wca.EConsole, &device); err != nil {
		return fmt.Errorf("cannot get default audio output device: %w", err)
	}
	defer device.Release()

	name, err := this.nameOf(device)
	if err != nil {
		return err
	}

	var aev *wca.IAudioEndpointVolume
	if err := device.Activate(wca.IID_IAudioEndpointVolume, wca.CLSCTX_ALL, nil, &aev); err != nil {
		return fmt.Errorf("cannot get volume control of audio device %q: %w", name, err)
	}
	defer aev.Release()

	return f(name, aev)
}

func (this *System) nameOf(device *wca.IMMDevice) (string, error) {
	var propertyStore *wca.IPropertyStore
	if err := device.OpenPropertyStore(wca.STGM_READ, &propertyStore); err != nil {
		return "", fmt.Errorf("cannot get properties of default audio output device: %w", err)
	}
	defer propertyStore.Release()

	var name wca.PROPVARIANT
	if err := propertyStore.GetValue(&wca.PKEY_Device_FriendlyName, &name); err != nil {
		return "", fmt.Errorf("cannot get name of default audio output device: %w", err)
	}
	return name.String(), nil
}

func (this *System) Dispose() error {
	return nil
}

func (this *System) GetType() Type {
	return TypeSystem
}
