package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/eventhorizon/common"
	"github.com/go-gl/mathgl/mgl64"
)

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform struct.
// Matches GPUCameraUniform layout exactly (112 bytes, std430 aligned).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer handed
// to the renderer each frame. The forward and up vectors are included so ray-marching
// shaders can build view rays without inverting the matrix.
// Size: 112 bytes (std430 / WGSL aligned).
type GPUCameraUniform struct {
	ViewProj       [16]float32 // offset   0: combined view-projection matrix (mat4x4<f32>)
	CameraPosition [3]float32  // offset  64: world-space camera position (vec3<f32>)
	_pad0          float32     // offset  76
	CameraForward  [3]float32  // offset  80: unit forward vector (vec3<f32>)
	_pad1          float32     // offset  92
	CameraUp       [3]float32  // offset  96: unit up vector (vec3<f32>)
	_pad2          float32     // offset 108: padding to 112 bytes
}

// NewGPUCameraUniform snapshots cam into a uniform using the given projection matrix.
//
// Parameters:
//   - cam: the camera to read
//   - projection: the renderer's projection matrix
//
// Returns:
//   - GPUCameraUniform: the populated uniform
func NewGPUCameraUniform(cam Camera, projection mgl64.Mat4) GPUCameraUniform {
	pos := cam.Position()
	forward, _, up := cam.Basis()
	return GPUCameraUniform{
		ViewProj:       common.Mat4To32(projection.Mul4(cam.ViewMatrix())),
		CameraPosition: [3]float32{float32(pos[0]), float32(pos[1]), float32(pos[2])},
		CameraForward:  [3]float32{float32(forward[0]), float32(forward[1]), float32(forward[2])},
		CameraUp:       [3]float32{float32(up[0]), float32(up[1]), float32(up[2])},
	}
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (112)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewProj[i]))
	}
	putVec3(buf[64:], g.CameraPosition)
	putVec3(buf[80:], g.CameraForward)
	putVec3(buf[96:], g.CameraUp)
	return buf
}

// putVec3 writes v into the first 12 bytes of dst and zeroes the following pad word.
func putVec3(dst []byte, v [3]float32) {
	for i := range 3 {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(v[i]))
	}
	binary.LittleEndian.PutUint32(dst[12:], 0)
}
