package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"

	"github.com/teckion/dealership-api/models"
)

// GenerateVehicleVisuals renders a vehicle in a buyer-chosen scene from four
// angles. Prompts that yield no image are skipped; the call only errors when
// every prompt failed.
func (c *Client) GenerateVehicleVisuals(ctx context.Context, vehicle models.VehicleDetails, sceneContext, modification string) ([][]byte, error) {
	baseVisual := vehicle.VisualDesc
	if baseVisual == "" {
		baseVisual = vehicle.Name
	}
	modString := ""
	if modification != "" {
		modString = fmt.Sprintf("MODIFICATION: %s. ", modification)
	}

	prompts := []string{
		fmt.Sprintf("Photorealistic image of this car: %s, placed in a %s environment. %sMaintain the exact car model and color unless modified.", baseVisual, sceneContext, modString),
		fmt.Sprintf("Side profile view of this car: %s, driving in %s. %sCinematic lighting.", baseVisual, sceneContext, modString),
		fmt.Sprintf("Rear view of this car: %s, parked in %s. %sHigh quality.", baseVisual, sceneContext, modString),
		fmt.Sprintf("Detail shot of this car: %s, in %s. %s", baseVisual, sceneContext, modString),
	}

	m := c.client.GenerativeModel(c.imageModel)
	var images [][]byte
	var lastErr error
	for _, p := range prompts {
		resp, err := m.GenerateContent(ctx, genai.Text(p))
		if err != nil {
			lastErr = err
			zap.S().With(err).Warn("visual generation prompt failed")
			continue
		}
		if img := firstImage(resp); img != nil {
			images = append(images, img)
		}
	}
	if len(images) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return images, nil
}

func firstImage(resp *genai.GenerateContentResponse) []byte {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if blob, ok := part.(genai.Blob); ok {
			return blob.Data
		}
	}
	return nil
}
