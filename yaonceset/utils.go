package yaonceset

// safetyCheck ensures that the internal map is initialized before a write,
// so the zero value of OnceSet works. Callers must hold the mutex.
func (s *OnceSet[K]) safetyCheck() {
	if s.data == nil {
		s.data = make(map[K]struct{})
	}
}
