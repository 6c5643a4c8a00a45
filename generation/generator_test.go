package generation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEchoGeneratorCyclesReferences(t *testing.T) {
	refs := []Asset{{Name: "a.jpg", Data: []byte("a")}, {Name: "b.png", Data: []byte("b")}}

	out, err := EchoGenerator{}.GenerateImages(context.Background(), ImageJob{Count: 5, References: refs})
	require.NoError(t, err)
	require.Len(t, out, 5)
	require.Equal(t, "image-1.png", out[0].Name)
	require.Equal(t, "image-5.png", out[4].Name)
	require.Equal(t, []byte("a"), out[2].Data)
	require.Equal(t, []byte("b"), out[3].Data)
}

func TestEchoGeneratorErrors(t *testing.T) {
	_, err := EchoGenerator{}.GenerateImages(context.Background(), ImageJob{Count: 1})
	require.Error(t, err)

	_, err = EchoGenerator{}.GenerateVideo(context.Background(), VideoJob{Image: Asset{Name: "x.png"}})
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = EchoGenerator{}.GenerateImages(ctx, ImageJob{Count: 1, References: []Asset{{Data: []byte("a")}}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestEchoGeneratorVideo(t *testing.T) {
	v, err := EchoGenerator{}.GenerateVideo(context.Background(), VideoJob{
		Image:       Asset{Name: "image-1.png", Data: []byte("png")},
		AspectRatio: "9:16",
	})
	require.NoError(t, err)
	require.Equal(t, VideoName, v.Name)
	require.Contains(t, string(v.Data), "9:16")
}
