package cli

import (
	goflag "flag"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog"

	"spatial/src/demo"
	"spatial/src/render"
)

var spatialExample = `# print the demonstration report
%[1]s

# print it as YAML with a bigger ball
%[1]s --output=yaml --radius=4

# evaluate a scene read from a file
%[1]s --config=scene.yaml`

// SpatialFlags holds the flags that are not read through viper.
type SpatialFlags struct {
	ConfigFile string
}

type SpatialOpts struct {
	Config   *demo.Config
	Scene    demo.Scene
	Renderer render.Renderer

	Out    io.Writer
	ErrOut io.Writer
}

func (o *SpatialFlags) ToOptions(flags *pflag.FlagSet, out, errout io.Writer) (*SpatialOpts, error) {
	v, err := demo.NewViper(flags)
	if err != nil {
		return nil, err
	}
	cfg, err := demo.LoadConfig(v, o.ConfigFile)
	if err != nil {
		return nil, err
	}
	return &SpatialOpts{
		Config: cfg,
		Out:    out,
		ErrOut: errout,
	}, nil
}

// NewCmdSpatial builds the root command. klog's flags are added to its
// persistent flag set.
func NewCmdSpatial(name string, out, errout io.Writer) *cobra.Command {
	flags := &SpatialFlags{}

	cmd := &cobra.Command{
		Use:           name,
		Short:         "Evaluates points, vectors and a ball and prints the results",
		Long:          "Evaluates a small scene of 3D points, vectors and a ball: magnitude, sum, dot product, collinearity, containment, surface area and volume.",
		Example:       fmt.Sprintf(spatialExample, name),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := flags.ToOptions(c.Flags(), out, errout)
			if err != nil {
				return err
			}

			if err := opts.Complete(); err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			if err := opts.Run(); err != nil {
				return err
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.ConfigFile, "config", flags.ConfigFile, "path to a YAML, JSON or TOML scene file.")
	cmd.Flags().StringP("output", "o", string(render.FormatText), "output format. One of: text, json, yaml.")
	cmd.Flags().Float64("radius", 2.5, "radius of the ball centred on the origin point.")

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	return cmd
}

func (o *SpatialOpts) Complete() error {
	scene, err := o.Config.Scene()
	if err != nil {
		return err
	}
	o.Scene = scene
	klog.V(2).Infof("Scene: origin=%s probe=%s v1=%s v2=%s ball=%s",
		scene.Origin, scene.Probe, scene.V1, scene.V2, scene.Ball)
	return nil
}

func (o *SpatialOpts) Validate() error {
	r, err := render.ForFormat(o.Config.Output)
	if err != nil {
		return err
	}
	o.Renderer = r
	return nil
}

func (o *SpatialOpts) Run() error {
	report := o.Scene.Evaluate()
	klog.V(2).Infof("Rendering report as %s", o.Renderer.Format())
	return o.Renderer.Render(o.Out, report)
}
