// SPDX-License-Identifier: Apache-2.0

package siteconfig

// DeepMerge merges override onto base field by field and returns the result.
// Neither input is mutated.
//
// Rules:
//   - when base is not a plain keyed object, override wins outright;
//   - when base is an object but override is not, base is kept;
//   - otherwise keys present in both are merged recursively, keys only in
//     base are retained, keys only in override are added.
//
// Arrays are atomic leaf values: an override array replaces the base array
// wholesale, there is no element-wise merging.
func DeepMerge(base, override map[string]any) map[string]any {
	merged := mergeValue(base, override)
	if m, ok := merged.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func mergeValue(base, override any) any {
	baseMap, baseIsMap := base.(map[string]any)
	if !baseIsMap {
		return copyValue(override)
	}

	overrideMap, overrideIsMap := override.(map[string]any)
	if !overrideIsMap {
		return copyValue(base)
	}

	out := make(map[string]any, len(baseMap)+len(overrideMap))
	for key, baseVal := range baseMap {
		out[key] = copyValue(baseVal)
	}
	for key, overrideVal := range overrideMap {
		if baseVal, exists := out[key]; exists {
			out[key] = mergeValue(baseVal, overrideVal)
			continue
		}
		out[key] = copyValue(overrideVal)
	}

	return out
}

// copyValue deep-copies maps and slices so merged documents never alias the
// inputs. Scalars are returned as-is.
func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = copyValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	default:
		return val
	}
}
