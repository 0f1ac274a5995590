// +build !windows

package bgslib

import (
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xinerama"
)

// Heads prefers Xinerama, which is what most window managers use to decide
// what a monitor is, then falls back to enabled RandR CRTCs.
// Missing extensions aren't errors, there just won't be any heads.
func (d *xDisplay) Heads() []Rect {
	heads, err := d.xineramaHeads()
	if err == nil && len(heads) > 0 {
		return heads
	}

	heads, err = d.randrHeads()
	if err != nil {
		return nil
	}
	return heads
}

func (d *xDisplay) xineramaHeads() ([]Rect, error) {
	Xgb := d.X.Conn()

	err := xinerama.Init(Xgb)
	if err != nil {
		return nil, err
	}

	active, err := xinerama.IsActive(Xgb).Reply()
	if err != nil {
		return nil, err
	}
	if active.State == 0 {
		return nil, nil
	}

	reply, err := xinerama.QueryScreens(Xgb).Reply()
	if err != nil {
		return nil, err
	}

	heads := make([]Rect, 0, len(reply.ScreenInfo))
	for _, s := range reply.ScreenInfo {
		heads = append(heads, Rect{
			X:      int(s.XOrg),
			Y:      int(s.YOrg),
			Width:  int(s.Width),
			Height: int(s.Height),
		})
	}
	return heads, nil
}

func (d *xDisplay) randrHeads() ([]Rect, error) {
	Xgb := d.X.Conn()

	err := randr.Init(Xgb)
	if err != nil {
		return nil, err
	}

	resources, err := randr.GetScreenResources(Xgb, d.root).Reply()
	if err != nil {
		return nil, err
	}

	heads := []Rect{}
	for _, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(Xgb, crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			return nil, err
		}

		// Disabled CRTC
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		heads = append(heads, Rect{
			X:      int(info.X),
			Y:      int(info.Y),
			Width:  int(info.Width),
			Height: int(info.Height),
		})
	}

	return heads, nil
}
