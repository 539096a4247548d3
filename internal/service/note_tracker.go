package service

import "github.com/MKhiriev/go-light-client/models"

// noteTracker collects the note records changed during one sync step. Later
// stages must work on the tracked copy of a record, not on the stored one.
type noteTracker struct {
	inputs      map[models.NoteID]*models.InputNoteRecord
	inputOrder  []models.NoteID
	newInputs   map[models.NoteID]bool
	outputs     map[models.NoteID]*models.OutputNoteRecord
	outputOrder []models.NoteID
}

func newNoteTracker() *noteTracker {
	return &noteTracker{
		inputs:    make(map[models.NoteID]*models.InputNoteRecord),
		newInputs: make(map[models.NoteID]bool),
		outputs:   make(map[models.NoteID]*models.OutputNoteRecord),
	}
}

// input returns the tracked version of stored, or a copy of it.
func (t *noteTracker) input(stored models.InputNoteRecord) *models.InputNoteRecord {
	if rec, ok := t.inputs[stored.ID()]; ok {
		return rec
	}
	return &stored
}

func (t *noteTracker) output(stored models.OutputNoteRecord) *models.OutputNoteRecord {
	if rec, ok := t.outputs[stored.ID]; ok {
		return rec
	}
	return &stored
}

func (t *noteTracker) addNewInput(rec *models.InputNoteRecord) {
	t.newInputs[rec.ID()] = true
	t.updateInput(rec)
}

func (t *noteTracker) updateInput(rec *models.InputNoteRecord) {
	id := rec.ID()
	if _, ok := t.inputs[id]; !ok {
		t.inputOrder = append(t.inputOrder, id)
	}
	t.inputs[id] = rec
}

func (t *noteTracker) updateOutput(rec *models.OutputNoteRecord) {
	if _, ok := t.outputs[rec.ID]; !ok {
		t.outputOrder = append(t.outputOrder, rec.ID)
	}
	t.outputs[rec.ID] = rec
}

// inputsWithNullifier returns tracked records whose nullifier is in set.
func (t *noteTracker) inputsWithNullifier(set map[models.Nullifier]uint32) []*models.InputNoteRecord {
	var out []*models.InputNoteRecord
	for _, id := range t.inputOrder {
		rec := t.inputs[id]
		if _, ok := set[rec.Nullifier()]; ok {
			out = append(out, rec)
		}
	}
	return out
}

func (t *noteTracker) outputsWithNullifier(set map[models.Nullifier]uint32) []*models.OutputNoteRecord {
	var out []*models.OutputNoteRecord
	for _, id := range t.outputOrder {
		rec := t.outputs[id]
		if n, ok := rec.Nullifier(); ok {
			if _, hit := set[n]; hit {
				out = append(out, rec)
			}
		}
	}
	return out
}

// changedInputs returns every tracked input record in insertion order.
func (t *noteTracker) changedInputs() []*models.InputNoteRecord {
	out := make([]*models.InputNoteRecord, 0, len(t.inputOrder))
	for _, id := range t.inputOrder {
		out = append(out, t.inputs[id])
	}
	return out
}

func (t *noteTracker) updates() models.NoteUpdates {
	var u models.NoteUpdates
	for _, id := range t.inputOrder {
		if t.newInputs[id] {
			u.NewInputNotes = append(u.NewInputNotes, *t.inputs[id])
		} else {
			u.UpdatedInputNotes = append(u.UpdatedInputNotes, *t.inputs[id])
		}
	}
	for _, id := range t.outputOrder {
		u.UpdatedOutputNotes = append(u.UpdatedOutputNotes, *t.outputs[id])
	}
	return u
}
