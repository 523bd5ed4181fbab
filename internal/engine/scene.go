package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      map[uint64]*GameObject
	unmounted   bool
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
}

// RemoveGameObject removes g and all of its descendants from the scene.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	delete(s.uidMap, g.UID)
	if g.Scene == s {
		g.Scene = nil
	}
}

// FindByUID is an O(1) lookup; nil when the UID is unknown.
func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	if s.unmounted {
		return
	}
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	if s.unmounted {
		return
	}
	for _, g := range s.GameObjects {
		if g.ActiveInHierarchy() {
			g.Update(deltaTime)
		}
	}
}

// Unmount destroys every object and turns Start/Update into no-ops.
// Nothing keeps a per-frame hook into the scene afterwards.
func (s *Scene) Unmount() {
	if s.unmounted {
		return
	}
	s.unmounted = true
	objects := s.GameObjects
	for i := len(objects) - 1; i >= 0; i-- {
		objects[i].Destroy()
		objects[i].Scene = nil
	}
	s.GameObjects = nil
	s.uidMap = make(map[uint64]*GameObject)
}

func (s *Scene) Mounted() bool {
	return !s.unmounted
}
