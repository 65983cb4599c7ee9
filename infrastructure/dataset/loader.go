// Package dataset loads the fixed conceptual graph the service
// visualizes. The canonical dataset ships embedded in the binary;
// DATASET_PATH can point at an alternative JSON file with the same
// shape.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	_ "embed"

	"github.com/go-playground/validator/v10"

	"github.com/dkimh/Cybernetic-Design-Network/domain/core/aggregates"
	"github.com/dkimh/Cybernetic-Design-Network/domain/core/entities"
	"github.com/dkimh/Cybernetic-Design-Network/domain/core/valueobjects"
	pkgerrors "github.com/dkimh/Cybernetic-Design-Network/pkg/errors"
)

//go:embed design_factors.json
var embeddedDataset []byte

// RawNode is a node as it appears in the dataset file
type RawNode struct {
	ID          string `json:"id" validate:"required"`
	Label       string `json:"label" validate:"required"`
	Description string `json:"description,omitempty"`
}

// RawLink is a directed edge as it appears in the dataset file
type RawLink struct {
	Source string `json:"source" validate:"required"`
	Target string `json:"target" validate:"required"`
}

// RawDataset is the on-disk dataset shape
type RawDataset struct {
	Nodes []RawNode `json:"nodes" validate:"required,min=1,dive"`
	Links []RawLink `json:"links" validate:"dive"`
}

// Load builds the graph aggregate from the embedded dataset, or from
// the file at path when path is non-empty
func Load(path string) (*aggregates.Graph, error) {
	data := embeddedDataset
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "failed to read dataset file %q", path)
		}
		data = fileData
	}
	return Parse(data)
}

// Parse validates raw dataset JSON and builds the graph aggregate.
// Duplicate node IDs, dangling link endpoints, self-loops and duplicate
// links are all load-time errors; the core treats the loaded graph as
// already validated.
func Parse(data []byte) (*aggregates.Graph, error) {
	var raw RawDataset
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, pkgerrors.NewValidationError("dataset is not valid JSON").WithCause(err)
	}
	if err := validator.New().Struct(&raw); err != nil {
		return nil, pkgerrors.NewValidationError("dataset failed validation").WithCause(err)
	}

	nodes := make([]*entities.Node, 0, len(raw.Nodes))
	for _, rawNode := range raw.Nodes {
		id, err := valueobjects.NewNodeID(rawNode.ID)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "invalid node ID %q", rawNode.ID)
		}
		node, err := entities.NewNode(id, rawNode.Label)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "invalid node %q", rawNode.ID)
		}
		node.SetDescription(rawNode.Description)
		nodes = append(nodes, node)
	}

	graph, err := aggregates.NewGraph(nodes)
	if err != nil {
		return nil, err
	}

	for i, link := range raw.Links {
		sourceID, err := valueobjects.NewNodeID(link.Source)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "link %d has invalid source", i)
		}
		targetID, err := valueobjects.NewNodeID(link.Target)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "link %d has invalid target", i)
		}
		if err := graph.AddEdge(sourceID, targetID); err != nil {
			return nil, pkgerrors.Wrapf(err, "link %d (%s -> %s) rejected",
				i, link.Source, link.Target)
		}
	}

	return graph, nil
}

// MustLoadEmbedded parses the embedded dataset and panics on failure.
// The embedded copy is validated by tests, so a failure here means a
// broken build.
func MustLoadEmbedded() *aggregates.Graph {
	graph, err := Parse(embeddedDataset)
	if err != nil {
		panic(fmt.Sprintf("embedded dataset is invalid: %v", err))
	}
	return graph
}
