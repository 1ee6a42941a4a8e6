package voxel

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"

	"github.com/rednicstone/voxlife/internal/containers"
)

// Palette is the finished 256-entry MagicaVoxel RGBA table voxlife emits
// once per level and shares across every model of that level; a model's XYZI
// entries reference it by 1-based index, per the MagicaVoxel convention.
type Palette struct {
	RGBA [256][4]uint8
}

type oklab struct {
	L, A, B float32
}

// rgbToOklab maps an sRGB color in [0,255] to the near-uniform space
// k-means clusters in: sRGB -> XYZ (D65) -> a fixed linear combination.
// Note the textbook Oklab transform additionally cube-roots the LMS
// response; this linear variant is what the palettes are tuned for, so
// oklabToRGB must stay its exact inverse.
func rgbToOklab(c [3]uint8) oklab {
	r := float32(c[0]) / 255
	g := float32(c[1]) / 255
	b := float32(c[2]) / 255

	x := 0.4124564*r + 0.3575761*g + 0.1804375*b
	y := 0.2126729*r + 0.7151522*g + 0.0721750*b
	z := 0.0193339*r + 0.1191920*g + 0.9503041*b

	x /= 0.95047
	z /= 1.08883

	l := 0.210454*x + 0.793617*y - 0.004072*z
	a := 1.977665*x - 0.510530*y - 0.447580*z
	bb := 0.025334*x + 0.338572*y - 0.602190*z
	return oklab{l, a, bb}
}

func oklabToRGB(c oklab) [3]uint8 {
	x := 0.44562442079*c.L + 0.46266924383*c.A - 0.34689397498*c.B
	y := 1.14528157354*c.L - 0.12294697715*c.A + 0.08363642948*c.B
	z := 0.66266414585*c.L - 0.04966064087*c.A - 1.62817592248*c.B

	x *= 0.95047
	z *= 1.08883

	r := 3.2404542*x - 1.5371385*y - 0.4985314*z
	g := -0.9692660*x + 1.8760108*y + 0.0415560*z
	b := 0.0556434*x - 0.2040259*y + 1.0572252*z

	return [3]uint8{clampChannel(r * 255), clampChannel(g * 255), clampChannel(b * 255)}
}

func clampChannel(f float32) uint8 {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f)
}

func (a oklab) sub(b oklab) oklab {
	return oklab{a.L - b.L, a.A - b.A, a.B - b.B}
}

func (a oklab) dot(b oklab) float32 {
	return a.L*b.L + a.A*b.A + a.B*b.B
}

// kmeans clusters points into k centroids in Oklab space: random
// unique-point initialization, up to maxIterations Lloyd's-algorithm
// passes, and empty clusters reseeded from a random point rather than
// left stranded. rng is supplied by the caller so a fixed seed produces
// reproducible palettes across runs.
func kmeans(points []oklab, k int, maxIterations int, rng *rand.Rand) (assignments []int, centroids []oklab) {
	n := len(points)
	assignments = make([]int, n)
	centroids = make([]oklab, k)

	if n <= k {
		for i := 0; i < n; i++ {
			assignments[i] = i
			centroids[i] = points[i]
		}
		for i := n; i < k; i++ {
			centroids[i] = points[n-1]
		}
		return assignments, centroids
	}

	indices := rng.Perm(n)
	for i := 0; i < k; i++ {
		centroids[i] = points[indices[i]]
	}

	newCentroids := make([]oklab, k)
	counts := make([]int, k)

	changed := true
	for iter := 0; changed && iter < maxIterations; iter++ {
		changed = false

		for i, p := range points {
			best := 0
			bestDist := float32(-1)
			for j, c := range centroids {
				d := p.sub(c)
				dist := d.dot(d)
				if bestDist < 0 || dist < bestDist {
					bestDist = dist
					best = j
				}
			}
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}

		for i := range newCentroids {
			newCentroids[i] = oklab{}
			counts[i] = 0
		}
		for i, p := range points {
			c := assignments[i]
			counts[c]++
			newCentroids[c].L += p.L
			newCentroids[c].A += p.A
			newCentroids[c].B += p.B
		}

		for j := range centroids {
			if counts[j] > 0 {
				f := float32(counts[j])
				centroids[j] = oklab{newCentroids[j].L / f, newCentroids[j].A / f, newCentroids[j].B / f}
			} else {
				centroids[j] = points[rng.Intn(n)]
			}
		}
	}

	return assignments, centroids
}

// sortUniqueColors orders a material job's unique colors by their packed
// RGB key before clustering, so the base sequence rng.Perm shuffles from is
// independent of voxel-visit order (which otherwise follows BSP face order)
// and only the seed controls the resulting permutation.
func sortUniqueColors(job *materialJob) {
	order := make([]int, len(job.unique))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		switch {
		case job.unique[a] < job.unique[b]:
			return -1
		case job.unique[a] > job.unique[b]:
			return 1
		default:
			return 0
		}
	})

	sortedColors := make([]oklab, len(job.colors))
	sortedUnique := make([]uint32, len(job.unique))
	for i, idx := range order {
		sortedColors[i] = job.colors[idx]
		sortedUnique[i] = job.unique[idx]
	}
	job.colors = sortedColors
	job.unique = sortedUnique
}

func packColor(c [3]uint8) uint32 {
	return uint32(c[0])<<16 | uint32(c[1])<<8 | uint32(c[2])
}

// materialJob is one material class's clustering work, handed out through
// the worker pool's ring queue.
type materialJob struct {
	material Material
	colors   []oklab
	unique   []uint32 // parallel to colors; packed RGB key
}

// GeneratePalette buckets every non-air voxel across models by material
// class, runs one k-means pass per class confined to that class's
// reserved palette slot range, stamps each voxel's Index with its
// resulting slot, and returns the assembled 256-entry RGBA table.
//
// workers bounds how many material classes are clustered concurrently; 0
// means one goroutine per non-empty class (there are at most
// materialCount-1 of them, so this never over-subscribes by much).
func GeneratePalette(models []*VoxelModel, seed int64, iterations, workers int) *Palette {
	uniqueIndex := make([]map[uint32]int, materialCount)
	jobs := make([]*materialJob, materialCount)
	for m := range jobs {
		jobs[m] = &materialJob{material: Material(m)}
		uniqueIndex[m] = make(map[uint32]int)
	}

	for _, model := range models {
		for _, v := range model.Voxels {
			if v.Material == Air {
				continue
			}
			key := packColor(v.Color)
			job := jobs[v.Material]
			if _, ok := uniqueIndex[v.Material][key]; !ok {
				uniqueIndex[v.Material][key] = len(job.colors)
				job.colors = append(job.colors, rgbToOklab(v.Color))
				job.unique = append(job.unique, key)
			}
		}
	}

	var pending []*materialJob
	for _, job := range jobs {
		if len(job.colors) == 0 || job.material.Slot().Count == 0 {
			continue
		}
		sortUniqueColors(job)
		pending = append(pending, job)
	}

	lookups := make([]map[uint32]uint8, materialCount)
	centroidsByMaterial := make([][]oklab, materialCount)

	if len(pending) > 0 {
		queue := containers.NewRingQueue[*materialJob](len(pending))
		for _, job := range pending {
			_ = queue.Enqueue(job)
		}

		n := workers
		if n <= 0 || n > len(pending) {
			n = len(pending)
		}

		var remaining int32 = int32(len(pending))
		var mu sync.Mutex
		var wg sync.WaitGroup
		wg.Add(n)
		for w := 0; w < n; w++ {
			go func() {
				defer wg.Done()
				for atomic.LoadInt32(&remaining) > 0 {
					job, err := queue.Dequeue()
					if err != nil {
						if atomic.LoadInt32(&remaining) <= 0 {
							return
						}
						runtime.Gosched()
						continue
					}
					atomic.AddInt32(&remaining, -1)

					// Seeding per material, not per worker, keeps the
					// clustering independent of which goroutine happens
					// to pick the job up.
					rng := rand.New(rand.NewSource(uint64(seed) + uint64(job.material)))

					slot := job.material.Slot()
					k := slot.Count
					if k > len(job.colors) {
						k = len(job.colors)
					}
					assignments, centroids := kmeans(job.colors, k, iterations, rng)

					lookup := make(map[uint32]uint8, len(job.colors))
					for i, key := range job.unique {
						lookup[key] = uint8(assignments[i])
					}

					mu.Lock()
					lookups[job.material] = lookup
					centroidsByMaterial[job.material] = centroids
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
	}

	pal := &Palette{}
	for i := range pal.RGBA {
		pal.RGBA[i] = [4]uint8{0, 0, 0, 255}
	}
	for m := Material(0); m < materialCount; m++ {
		slot := m.Slot()
		for i, c := range centroidsByMaterial[m] {
			rgb := oklabToRGB(c)
			pal.RGBA[slot.Base+i] = [4]uint8{rgb[0], rgb[1], rgb[2], 255}
		}
	}

	for _, model := range models {
		for i, v := range model.Voxels {
			if v.Material == Air {
				continue
			}
			lookup := lookups[v.Material]
			cluster, ok := lookup[packColor(v.Color)]
			if !ok {
				continue
			}
			model.Voxels[i].Index = uint8(v.Material.Slot().Base + int(cluster))
		}
	}

	return pal
}
