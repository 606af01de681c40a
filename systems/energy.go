package systems

import (
	"github.com/automoto/digimorph/components"
	"github.com/yohamta/donburi"
)

// Energy returns the energy of agent's active archetype.
func Energy(agent *donburi.Entry) int {
	ledger, id, ok := activeLedger(agent)
	if !ok {
		return 0
	}
	return ledger.Amount(id)
}

// MaxEnergy returns the per-archetype energy cap of agent.
func MaxEnergy(agent *donburi.Entry) int {
	if agent == nil || !agent.Valid() || !agent.HasComponent(components.Energy) {
		return 0
	}
	return components.Energy.Get(agent).Max
}

// IsEnergyFull reports whether the active archetype's energy is at the cap.
func IsEnergyFull(agent *donburi.Entry) bool {
	if _, _, ok := activeLedger(agent); !ok {
		return false
	}
	return Energy(agent) == MaxEnergy(agent)
}

// AddEnergy credits amount to the active archetype's entry, clamped to the
// cap. Non-positive amounts are ignored.
func AddEnergy(w donburi.World, agent *donburi.Entry, amount int) {
	if amount <= 0 {
		return
	}
	ledger, id, ok := activeLedger(agent)
	if !ok {
		return
	}
	next := ledger.Amount(id) + amount
	if next > ledger.Max || next < 0 { // overflow lands below zero
		next = ledger.Max
	}
	ledger.Entries[id] = next
	emitEnergy(w, agent)
}

// TrySpendEnergy debits amount from the active archetype's entry. It
// returns false and changes nothing when the entry holds less than amount.
func TrySpendEnergy(w donburi.World, agent *donburi.Entry, amount int) bool {
	ledger, id, ok := activeLedger(agent)
	if !ok || amount < 0 {
		return false
	}
	return spendEntry(w, agent, ledger, id, amount)
}

func spendEntry(w donburi.World, agent *donburi.Entry, ledger *components.EnergyData, id string, amount int) bool {
	current := ledger.Amount(id)
	if current < amount {
		return false
	}
	ledger.Entries[id] = current - amount
	emitEnergy(w, agent)
	return true
}

func emitEnergy(w donburi.World, agent *donburi.Entry) {
	components.EnergyChangedEvent.Publish(w, components.EnergyChanged{
		Agent:   agent,
		Current: Energy(agent),
		Max:     MaxEnergy(agent),
	})
}

func activeLedger(agent *donburi.Entry) (*components.EnergyData, string, bool) {
	if agent == nil || !agent.Valid() || !agent.HasComponent(components.Energy) {
		return nil, "", false
	}
	def := components.Agent.Get(agent).Definition
	if def == nil {
		return nil, "", false
	}
	return components.Energy.Get(agent), def.ID, true
}
