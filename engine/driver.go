package engine

import "github.com/lixenwraith/troll-dodge/events"

// System is a per-tick stage of the game loop
type System interface {
	Update(ctx *GameContext)
}

// Driver runs one loop iteration per display frame
//
// Tick order:
//  1. Fire due timers (effects, spawners, troll windows) regardless of phase
//  2. While Running, run systems in registration order; a stage that ends the round stops the rest
//  3. Dispatch queued effect events to presentation handlers
type Driver struct {
	ctx     *GameContext
	systems []System
	router  *events.Router
}

// NewDriver creates a driver bound to ctx with a router over ctx.Events
func NewDriver(ctx *GameContext) *Driver {
	return &Driver{
		ctx:    ctx,
		router: events.NewRouter(ctx.Events),
	}
}

// AddSystem appends a stage to the tick pipeline
func (d *Driver) AddSystem(s System) {
	d.systems = append(d.systems, s)
}

// RegisterHandler subscribes a presentation collaborator to effect events
func (d *Driver) RegisterHandler(h events.Handler) {
	d.router.Register(h)
}

// Router exposes the event router for observers
func (d *Driver) Router() *events.Router {
	return d.router
}

// Tick executes one frame
func (d *Driver) Tick() {
	d.ctx.IncrementFrame()
	d.ctx.Scheduler.RunDue(d.ctx.Now())

	for _, s := range d.systems {
		if !d.ctx.State.IsRunning() {
			break
		}
		s.Update(d.ctx)
	}

	d.router.DispatchAll()
}

// Flush dispatches pending events without advancing the loop
// Input handlers call it so feedback appears before the next frame
func (d *Driver) Flush() {
	d.router.DispatchAll()
}
