package components

// EntityID is a stable handle for a live obstacle or collectible
// Presentation keys visuals by ID; IDs are never reused within a process
type EntityID uint64
