package core

// Ray is an origin point and a normalised direction. Construction always
// normalises Direction so downstream code can rely on unit length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay builds a ray, normalising direction.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
