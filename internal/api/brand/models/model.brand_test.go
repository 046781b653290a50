// Package models - Test giá trị mặc định của Brand.
package models

import "testing"

func TestEffectiveRotation(t *testing.T) {
	empty := &Brand{}
	policy := empty.EffectiveRotation()
	if policy.MaxConsecutivePromoPosts != DefaultMaxConsecutivePromoPosts {
		t.Errorf("brand chưa cấu hình: muốn max %d, nhận %d", DefaultMaxConsecutivePromoPosts, policy.MaxConsecutivePromoPosts)
	}
	if policy.MinGapBetweenPromotions != DefaultMinGapBetweenPromotions {
		t.Errorf("brand chưa cấu hình: muốn gap %d, nhận %d", DefaultMinGapBetweenPromotions, policy.MinGapBetweenPromotions)
	}

	configured := &Brand{SmartRotation: RotationPolicy{MaxConsecutivePromoPosts: 1, MinGapBetweenPromotions: 7}}
	policy = configured.EffectiveRotation()
	if policy.MaxConsecutivePromoPosts != 1 || policy.MinGapBetweenPromotions != 7 {
		t.Errorf("brand đã cấu hình phải giữ nguyên, nhận %+v", policy)
	}

	partial := &Brand{SmartRotation: RotationPolicy{MaxConsecutivePromoPosts: 5}}
	policy = partial.EffectiveRotation()
	if policy.MaxConsecutivePromoPosts != 5 {
		t.Errorf("giá trị đã đặt phải giữ nguyên, nhận %d", policy.MaxConsecutivePromoPosts)
	}
	if policy.MinGapBetweenPromotions != DefaultMinGapBetweenPromotions {
		t.Errorf("giá trị thiếu phải về mặc định %d, nhận %d", DefaultMinGapBetweenPromotions, policy.MinGapBetweenPromotions)
	}
}

func TestEffectiveContentMix(t *testing.T) {
	empty := &Brand{}
	mix := empty.EffectiveContentMix()
	if mix.Educational != 25 || mix.Promotional != 25 || mix.Storytelling != 25 || mix.Authority != 25 {
		t.Errorf("mix chưa cấu hình phải là 25/25/25/25, nhận %+v", mix)
	}

	configured := &Brand{ContentMix: BrandContentMix{Educational: 40, Promotional: 20, Storytelling: 30, Authority: 10}}
	mix = configured.EffectiveContentMix()
	if mix.Educational != 40 || mix.Authority != 10 {
		t.Errorf("mix đã cấu hình phải giữ nguyên, nhận %+v", mix)
	}
}
