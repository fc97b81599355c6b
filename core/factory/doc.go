// Package factory provides a small generic registry used to instantiate
// pluggable components, such as metrics sinks, from configuration. A
// component is named by a type string and carries a map of raw settings that
// its factory decodes into a typed struct.
//
//	reg := factory.NewRegistry[metrics.LayoutRecorder]()
//	reg.Register("prometheus", func(conf map[string]any) (metrics.LayoutRecorder, error) {
//	    var c struct{ Namespace string `json:"namespace"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return newSink(c.Namespace)
//	})
package factory
