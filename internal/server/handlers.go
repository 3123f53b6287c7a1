package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/tonewise/skintone-mcp/internal/imgio"
	"github.com/tonewise/skintone-mcp/internal/palette"
	"github.com/tonewise/skintone-mcp/internal/skin"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "skin_detect_tone").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified
// tool, wrapping the result in MCP's content format. Tool failures return a
// JSON-RPC error with code -32000 and the pipeline's user-facing message.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image plumbing
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_save_upload":
		return s.handleImageSaveUpload(args)

	// Skin tone pipeline
	case "skin_segment":
		return s.handleSkinSegment(args)
	case "skin_detect_tone":
		return s.handleSkinDetectTone(args)
	case "skin_apply_tone":
		return s.handleSkinApplyTone(args)

	// Recommendations
	case "color_recommend":
		return s.handleColorRecommend(args)
	case "color_complementary":
		return s.handleColorComplementary(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Plumbing Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imgio.LoadInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imgio.LoadDimensions(s.cache, a.Path)
}

type imageSaveUploadArgs struct {
	DataBase64 string `json:"data_base64"`
	Extension  string `json:"extension"`
}

// SaveUploadResult reports where an upload landed.
type SaveUploadResult struct {
	Path      string `json:"path"`
	SizeBytes int    `json:"size_bytes"`
}

func (s *Server) handleImageSaveUpload(args json.RawMessage) (interface{}, error) {
	var a imageSaveUploadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(a.DataBase64)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	path, err := s.store.SaveUpload(data, a.Extension)
	if err != nil {
		return nil, err
	}
	return &SaveUploadResult{Path: path, SizeBytes: len(data)}, nil
}

// === Skin Tone Pipeline Handlers ===

// SegmentResult reports mask statistics and the rendered mask image.
type SegmentResult struct {
	Width           int              `json:"width"`
	Height          int              `json:"height"`
	SkinPixels      int              `json:"skin_pixels"`
	CoveragePercent float64          `json:"coverage_percent"`
	SkinDetected    bool             `json:"skin_detected"`
	Mask            *imgio.PNGResult `json:"mask"`
}

func (s *Server) handleSkinSegment(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	mask, err := skin.Segment(img)
	if err != nil {
		return nil, err
	}
	rendered, err := imgio.EncodePNG(mask.Image())
	if err != nil {
		return nil, err
	}
	count := mask.Count()
	return &SegmentResult{
		Width:           mask.Width,
		Height:          mask.Height,
		SkinPixels:      count,
		CoveragePercent: math.Round(mask.Coverage()*10000) / 100,
		SkinDetected:    count > 0,
		Mask:            rendered,
	}, nil
}

func (s *Server) handleSkinDetectTone(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return skin.AnalyzeTone(img)
}

type skinApplyToneArgs struct {
	Path string `json:"path"`
	Tone string `json:"tone"`
	Save bool   `json:"save"`
}

// ApplyToneResult carries the recolored image and, when requested, the path
// it was persisted to.
type ApplyToneResult struct {
	Tone      string           `json:"tone"`
	Image     *imgio.PNGResult `json:"image"`
	SavedPath string           `json:"saved_path,omitempty"`
}

func (s *Server) handleSkinApplyTone(args json.RawMessage) (interface{}, error) {
	var a skinApplyToneArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	tone, err := skin.ParseTone(a.Tone)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	modified, err := skin.ApplyTone(img, tone)
	if err != nil {
		return nil, err
	}
	encoded, err := imgio.EncodePNG(modified)
	if err != nil {
		return nil, err
	}

	result := &ApplyToneResult{Tone: string(tone), Image: encoded}
	if a.Save {
		saved, err := s.store.SaveDerived(modified, a.Path, string(tone))
		if err != nil {
			return nil, err
		}
		result.SavedPath = saved
	}
	return result, nil
}

// === Recommendation Handlers ===

type colorRecommendArgs struct {
	Tone string `json:"tone"`
}

func (s *Server) handleColorRecommend(args json.RawMessage) (interface{}, error) {
	var a colorRecommendArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return palette.Recommend(a.Tone), nil
}

type colorComplementaryArgs struct {
	Hex   string `json:"hex"`
	Count int    `json:"count"`
}

// ComplementaryResult lists the generated colors alongside the base.
type ComplementaryResult struct {
	Base   string   `json:"base"`
	Colors []string `json:"colors"`
}

func (s *Server) handleColorComplementary(args json.RawMessage) (interface{}, error) {
	var a colorComplementaryArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 4
	}
	base, err := colorful.Hex(a.Hex)
	if err != nil {
		return nil, fmt.Errorf("invalid base color %q: %w", a.Hex, err)
	}
	r, g, b := base.RGB255()
	return &ComplementaryResult{
		Base:   base.Hex(),
		Colors: palette.Complementary(r, g, b, a.Count),
	}, nil
}
