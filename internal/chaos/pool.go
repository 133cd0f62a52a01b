package chaos

import "sync"

// OrbitPool recycles fixed-length orbit buffers across sweep and
// ensemble workers.
type OrbitPool struct {
	pool sync.Pool
	size int
}

func NewOrbitPool(orbitLen int) *OrbitPool {
	return &OrbitPool{
		size: orbitLen,
		pool: sync.Pool{
			New: func() interface{} {
				return make(Orbit, orbitLen)
			},
		},
	}
}

func (p *OrbitPool) Get() Orbit {
	return p.pool.Get().(Orbit)
}

func (p *OrbitPool) Put(o Orbit) {
	if len(o) == p.size {
		for i := range o {
			o[i] = 0
		}
		p.pool.Put(o)
	}
}
