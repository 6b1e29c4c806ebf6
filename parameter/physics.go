package parameter

// Collision
const (
	// CollisionThreshold is the full proximity width; each body extends half of it per side
	CollisionThreshold = 1.5

	// CollisionImpulse is the x-axis separation applied to each body per colliding tick
	CollisionImpulse = 2.0
)

// BodyInitialOffset places the two accumulated translations at -offset and +offset on x
const BodyInitialOffset = 0.5

// BodyMeshHalfExtent sizes the built-in cube so its silhouette matches the collision width
const BodyMeshHalfExtent = CollisionThreshold / 2
