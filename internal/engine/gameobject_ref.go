package engine

// GameObjectRef is a nullable reference to a GameObject by UID.
// Scripts hold one instead of a pointer so a missing or not-yet-spawned
// target resolves to nil and the caller can skip the frame.
type GameObjectRef struct {
	UID uint64 // 0 = none
}

// Get resolves the reference against scene. Nil when empty, when scene is nil,
// or when the object is no longer in the scene.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid reports whether the reference is set. It does not check the scene.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}
