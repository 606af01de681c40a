package factory

import (
	"log"

	"github.com/automoto/digimorph/archetypes"
	"github.com/automoto/digimorph/components"
	cfg "github.com/automoto/digimorph/config"
	"github.com/automoto/digimorph/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateAgent spawns a controllable character bound to def. roster is the
// unlocked set; def is appended to it when missing. An agent whose
// definition is missing or invalid is created disabled and never ticks.
func CreateAgent(w donburi.World, x, y float64, def *cfg.CharacterDefinition, roster ...*cfg.CharacterDefinition) *donburi.Entry {
	var agent *donburi.Entry
	if err := def.Validate(); err != nil {
		log.Printf("[agent] cannot activate: %v", err)
		agent = archetypes.Agent.Spawn(w, tags.Disabled)
	} else {
		agent = archetypes.Agent.Spawn(w)
	}

	obj := resolv.NewObject(x, y, cfg.Sim.AgentWidth, cfg.Sim.AgentHeight, tags.ResolvAgent)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Sim.AgentWidth, cfg.Sim.AgentHeight))
	obj.Data = agent
	components.Object.SetValue(agent, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Physics.SetValue(agent, components.PhysicsData{
		Gravity: cfg.Sim.Gravity,
		MaxFall: cfg.Sim.MaxFallSpeed,
	})
	components.Energy.SetValue(agent, components.EnergyData{
		Max:     cfg.Sim.MaxEnergy,
		Entries: map[string]int{},
	})

	unlocked := make([]*cfg.CharacterDefinition, 0, len(roster)+1)
	for _, d := range roster {
		if d != nil {
			unlocked = append(unlocked, d)
		}
	}
	rosterData := components.RosterData{Unlocked: unlocked, Index: -1}
	if def != nil {
		if rosterData.IndexOf(def) < 0 {
			rosterData.Unlocked = append(rosterData.Unlocked, def)
		}
		rosterData.Index = rosterData.IndexOf(def)
	}
	components.Roster.SetValue(agent, rosterData)

	agentData := components.AgentData{
		Definition: def,
		Facing:     cfg.DirectionRight,
		Phase:      cfg.PhaseGrounded,
	}
	agentData.ResetCooldowns()
	if def != nil {
		agentData.Fuel = def.MaxFlyTime
		components.Energy.Get(agent).Amount(def.ID)
	}
	components.Agent.SetValue(agent, agentData)

	return agent
}
