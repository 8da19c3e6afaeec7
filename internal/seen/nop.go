package seen

// NopStore never persists anything, so every posting appears fresh on each
// run. Used by one-shot check mode.
type NopStore struct{}

func NewNopStore() *NopStore { return &NopStore{} }

func (s *NopStore) Load() (map[string]struct{}, error) { return map[string]struct{}{}, nil }
func (s *NopStore) Append(keys []string) error         { return nil }
func (s *NopStore) Close() error                       { return nil }
