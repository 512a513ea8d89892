// Package assets holds the files compiled into the binary: package icons for
// the GUI and the AdvantageScope joystick layout written after install.
package assets

import _ "embed"

// Package icons, 64x64 PNG.
var (
	//go:embed advantagescope.png
	AdvantageScopeIcon []byte
	//go:embed rev.png
	REVIcon []byte
	//go:embed limelight.png
	LimelightIcon []byte
	//go:embed ctre.png
	CTREIcon []byte
	//go:embed wpilib.png
	WPILibIcon []byte
	//go:embed ni.png
	NIIcon []byte
)

// Extreme 3D Pro joystick layout for AdvantageScope's frcData directory.
var (
	//go:embed Joystick_Extreme3DPro.json
	Extreme3DProConfig []byte
	//go:embed Joystick_Extreme3DPro.png
	Extreme3DProImage []byte
)
