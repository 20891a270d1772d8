package common

// Virtual key codes for the camera controls.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW = 87 // W key (ASCII): move up
	KeyA = 65 // A key (ASCII): move backward
	KeyS = 83 // S key (ASCII): move down
	KeyD = 68 // D key (ASCII): move forward

	KeyJ = 74 // J key (ASCII): rotate around up, positive
	KeyL = 76 // L key (ASCII): rotate around up, negative
	KeyI = 73 // I key (ASCII): rotate around right, positive
	KeyK = 75 // K key (ASCII): rotate around right, negative
	KeyU = 85 // U key (ASCII): rotate around forward, positive
	KeyO = 79 // O key (ASCII): rotate around forward, negative

	KeyC = 67 // C key (ASCII): cycle camera mode
	KeyR = 82 // R key (ASCII): reset camera
	KeyP = 80 // P key (ASCII): save resolution

	KeyLeftBracket  = 91 // [ key (ASCII): previous resolution
	KeyRightBracket = 93 // ] key (ASCII): next resolution

	KeyEsc = 256 // Escape key (GLFW)
)

// MaxKeyCode bounds the key state table kept by windows. GLFW key codes stop at 348 (Menu).
const MaxKeyCode = 349
