/*
Package json provides a JSON model.EncodeDecoder and a file-based
model.Store that keeps every model in its own JSON file under a
directory.

A model is serialized as a JSON object with its kind, task, depth and
an array of trees; every tree is an object with its depth, its ensemble
weight and the array of its filled nodes. Unfilled nodes are not
written, so an incomplete tree round-trips to the same incomplete tree.
*/
package json

import (
	"encoding/json"
	"fmt"

	"github.com/nalipour/MLlab/model"
	"github.com/nalipour/MLlab/tree"
)

type jsonNode struct {
	Index     int     `json:"index"`
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Greater   bool    `json:"greater"`
	Mean      float64 `json:"mean"`
	Samples   int     `json:"samples"`
	Purity    float64 `json:"purity"`
}

type jsonTree struct {
	Depth  int        `json:"depth"`
	Weight float64    `json:"weight,omitempty"`
	Nodes  []jsonNode `json:"nodes"`
}

type jsonModel struct {
	Kind  string     `json:"kind"`
	Task  string     `json:"task"`
	Depth int        `json:"depth"`
	Trees []jsonTree `json:"trees"`
}

// Codec is a model.EncodeDecoder that encodes models as JSON.
type Codec struct{}

// Encode receives a *model.Model and returns its JSON encoding, or an
// error if any of its trees cannot be serialized.
func (Codec) Encode(m *model.Model) ([]byte, error) {
	jm := jsonModel{Kind: m.Kind, Task: m.Task, Depth: m.Depth}
	for i, t := range m.Trees {
		if t == nil {
			return nil, fmt.Errorf("encoding model: tree %d is nil", i)
		}
		jt := jsonTree{Depth: t.Depth(), Weight: t.Weight}
		for _, n := range t.Nodes() {
			if !n.Filled {
				continue
			}
			jt.Nodes = append(jt.Nodes, jsonNode{
				Index:     n.Index,
				Feature:   n.FeatureIndex,
				Threshold: n.Threshold,
				Greater:   n.Greater,
				Mean:      n.Mean,
				Samples:   n.Samples,
				Purity:    n.Purity,
			})
		}
		jm.Trees = append(jm.Trees, jt)
	}
	return json.Marshal(jm)
}

// Decode receives a slice of bytes with a JSON-encoded model and
// returns the *model.Model decoded from it, or an error if the JSON
// cannot be parsed or describes an invalid tree.
func (Codec) Decode(data []byte) (*model.Model, error) {
	var jm jsonModel
	if err := json.Unmarshal(data, &jm); err != nil {
		return nil, fmt.Errorf("decoding model: %v", err)
	}
	m := &model.Model{Kind: jm.Kind, Task: jm.Task, Depth: jm.Depth}
	for i, jt := range jm.Trees {
		t, err := tree.New(jt.Depth)
		if err != nil {
			return nil, fmt.Errorf("decoding model: tree %d: %v", i, err)
		}
		t.Weight = jt.Weight
		for _, jn := range jt.Nodes {
			err := t.SetNode(jn.Index, jn.Feature, jn.Threshold, jn.Greater, jn.Mean, jn.Samples, jn.Purity)
			if err != nil {
				return nil, fmt.Errorf("decoding model: tree %d node %d: %v", i, jn.Index, err)
			}
		}
		m.Trees = append(m.Trees, t)
	}
	return m, nil
}
